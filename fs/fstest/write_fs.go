package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/rightson/overleaf/fs/core"
)

// TestWriteFSWithConfig tests write operations: Create, OpenFile, WriteFile
// and MkdirAll.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		skip(t, config, "WriteFS/CreateAndWrite")
		if err := filesystem.MkdirAll("out", 0o755); err != nil {
			t.Fatalf("MkdirAll(out): setup failed: %v", err)
		}
		f, err := filesystem.Create("out/created")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "out/created", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		expectContent(t, filesystem, "out/created", []byte("hello"))
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		skip(t, config, "WriteFS/CreateTruncates")
		if err := filesystem.WriteFile("truncate-me", []byte("long original content"), 0o644); err != nil {
			t.Fatalf("WriteFile(truncate-me): setup failed: %v", err)
		}
		f, err := filesystem.Create("truncate-me")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "truncate-me", err)
		}
		_, _ = f.Write([]byte("short"))
		_ = f.Close()
		expectContent(t, filesystem, "truncate-me", []byte("short"))
	})

	t.Run("WriteFile", func(t *testing.T) {
		skip(t, config, "WriteFS/WriteFile")
		if err := filesystem.WriteFile("written", []byte("data"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", "written", err)
		}
		expectContent(t, filesystem, "written", []byte("data"))
	})

	t.Run("OpenFileExclusive", func(t *testing.T) {
		skip(t, config, "WriteFS/OpenFileExclusive")
		f, err := filesystem.OpenFile("exclusive", os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err != nil {
			t.Fatalf("OpenFile(%q, O_EXCL): got error %v, want nil", "exclusive", err)
		}
		_ = f.Close()

		_, err = filesystem.OpenFile("exclusive", os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(%q, O_EXCL) second time: got error %v, want fs.ErrExist", "exclusive", err)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		skip(t, config, "WriteFS/MkdirAll")
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", "a/b/c", err)
		}
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll(%q) on existing dir: got error %v, want nil", "a/b/c", err)
		}
		info, err := filesystem.Stat("a/b/c")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v", "a/b/c", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "a/b/c")
		}
	})

	t.Run("CreateInNonExistentDir", func(t *testing.T) {
		skip(t, config, "WriteFS/CreateInNonExistentDir")
		f, err := filesystem.Create("no/such/dir/file")
		if config.ImplicitParentDirs {
			if err != nil {
				t.Fatalf("Create(%q): got error %v, want parents created", "no/such/dir/file", err)
			}
			_ = f.Close()
			return
		}
		if err == nil {
			_ = f.Close()
			t.Errorf("Create(%q): got nil error, want failure", "no/such/dir/file")
		}
	})
}

func expectContent(t *testing.T, filesystem core.FS, name string, want []byte) {
	t.Helper()
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, want)
	}
}
