package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rightson/overleaf/fs/core"
	"github.com/rightson/overleaf/fs/fstest"
)

func TestFS_Type(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %v, want %v", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %v, want %v", got, core.FSTypeMemory)
	}
}

func TestFS_Unwrap(t *testing.T) {
	mfs := NewMemory()
	if _, err := mfs.Unwrap().Create("direct.txt"); err != nil {
		t.Fatalf("Create() on unwrapped filesystem: got error %v", err)
	}
	if ok, err := mfs.Exists("direct.txt"); err != nil || !ok {
		t.Errorf("Exists(direct.txt) = %v, %v; want true, nil", ok, err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/foo/bar", "/foo/bar"},
		{"/foo//bar/", "/foo/bar"},
		{"/foo/./bar", "/foo/bar"},
		{"foo/../bar", "bar"},
		{"", "."},
	}

	for _, tt := range tests {
		if got := normalize(tt.input); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDirEntry_Methods(t *testing.T) {
	mfs := NewMemory()
	if err := mfs.WriteFile("/d/file", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}
	if err := mfs.MkdirAll("/d/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(): setup failed: %v", err)
	}

	entries, err := mfs.ReadDir("/d")
	if err != nil {
		t.Fatalf("ReadDir(): got error %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir(): got %d entries, want 2", len(entries))
	}

	file, sub := entries[0], entries[1]
	if file.Name() != "file" || file.IsDir() || file.Type() != 0 {
		t.Errorf("file entry = %q dir=%v type=%v", file.Name(), file.IsDir(), file.Type())
	}
	info, err := file.Info()
	if err != nil || info.Size() != 3 {
		t.Errorf("file.Info() = %v, %v; want size 3", info, err)
	}
	if !sub.IsDir() || sub.Type() != iofs.ModeDir {
		t.Errorf("sub entry dir=%v type=%v, want directory", sub.IsDir(), sub.Type())
	}
}

func TestMemoryFS_RemoveAll_NonExistent(t *testing.T) {
	if err := NewMemory().RemoveAll("/nope"); err != nil {
		t.Errorf("RemoveAll(/nope) = %v, want nil", err)
	}
}

func TestMemoryFS_ReadDirMissing(t *testing.T) {
	_, err := NewMemory().ReadDir("/nope")
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("ReadDir(/nope) = %v, want fs.ErrNotExist", err)
	}
	if core.Classify(err) != core.ErrorKindNotFound {
		t.Errorf("Classify(ReadDir(/nope)) = %v, want not_found", core.Classify(err))
	}
}

func TestMemoryFS_TempFileAbsoluteDir(t *testing.T) {
	mfs := NewMemory()
	f, err := mfs.TempFile("/tmp/uploads", "upload-")
	if err != nil {
		t.Fatalf("TempFile(): got error %v", err)
	}
	defer func() { _ = f.Close() }()

	if !strings.HasPrefix(f.Name(), "/tmp/uploads/upload-") {
		t.Errorf("TempFile().Name() = %q, want prefix %q", f.Name(), "/tmp/uploads/upload-")
	}
	if ok, _ := mfs.Exists(f.Name()); !ok {
		t.Errorf("Exists(%q) = false, want true", f.Name())
	}
}

// TestLocalFS_AbsolutePaths verifies the default root resolves absolute
// paths against the real disk.
func TestLocalFS_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	lfs := NewLocal()
	target := filepath.Join(dir, "nested", "blob")

	if err := lfs.WriteFile(target, []byte("on disk"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v", target, err)
	}
	data, err := lfs.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v", target, err)
	}
	if string(data) != "on disk" {
		t.Errorf("ReadFile(%q) = %q, want %q", target, data, "on disk")
	}

	f, err := lfs.TempFile(dir, "upload-")
	if err != nil {
		t.Fatalf("TempFile(%q): got error %v", dir, err)
	}
	_ = f.Close()
	if filepath.Dir(f.Name()) != filepath.ToSlash(dir) {
		t.Errorf("TempFile().Name() = %q, want it inside %q", f.Name(), dir)
	}
}

// TestLocalFS_TempFileDefaultDir verifies an unscoped LocalFS stages
// temporary files under os.TempDir() instead of "/".
func TestLocalFS_TempFileDefaultDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	lfs := NewLocal()

	f, err := lfs.TempFile("", "upload-")
	if err != nil {
		t.Fatalf("TempFile(\"\"): got error %v", err)
	}
	_ = f.Close()
	defer func() { _ = lfs.Remove(f.Name()) }()

	if filepath.Dir(f.Name()) != filepath.ToSlash(tmp) {
		t.Errorf("TempFile(\"\").Name() = %q, want it inside %q", f.Name(), tmp)
	}
	if _, err := os.Stat(filepath.Join(tmp, filepath.Base(f.Name()))); err != nil {
		t.Errorf("Stat(temp file in %q): got error %v", tmp, err)
	}
}

// TestLocalFS_ScopedTempFileDefaultDir verifies a rooted LocalFS keeps
// default temporary files inside its root, below /tmp.
func TestLocalFS_ScopedTempFileDefaultDir(t *testing.T) {
	root := t.TempDir()
	lfs := NewLocal(WithRoot(root))

	f, err := lfs.TempFile("", "upload-")
	if err != nil {
		t.Fatalf("TempFile(\"\"): got error %v", err)
	}
	_ = f.Close()

	if !strings.HasPrefix(f.Name(), "/tmp/upload-") {
		t.Errorf("TempFile(\"\").Name() = %q, want prefix %q", f.Name(), "/tmp/upload-")
	}
	if _, err := os.Stat(filepath.Join(root, "tmp", filepath.Base(f.Name()))); err != nil {
		t.Errorf("Stat(temp file below root): got error %v", err)
	}
}

// TestLocalFS runs the conformance suite against LocalFS rooted in a
// fresh temporary directory per group.
func TestLocalFS(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewLocal(WithRoot(t.TempDir()))
	})
}

// TestMemoryFS runs the conformance suite against MemoryFS.
func TestMemoryFS(t *testing.T) {
	fstest.TestSuite(t, func() core.FS { return NewMemory() })
}

func TestMemoryFS_WithRoot(t *testing.T) {
	mfs := NewMemory(WithRoot("/scoped"))
	if err := mfs.WriteFile("a", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): got error %v", err)
	}
	if ok, _ := NewMemory().Exists("/scoped/a"); ok {
		t.Error("separate MemoryFS instances must not share state")
	}
	if ok, err := mfs.Exists("a"); err != nil || !ok {
		t.Errorf("Exists(a) = %v, %v; want true, nil", ok, err)
	}
}
