package fstest

import (
	"path"
	"strings"
	"testing"

	"github.com/rightson/overleaf/fs/core"
)

// TestTempFSWithConfig tests TempFile creation.
func TestTempFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("TempFileInDir", func(t *testing.T) {
		skip(t, config, "TempFS/TempFileInDir")
		f, err := filesystem.TempFile("uploads", "blob-")
		if err != nil {
			t.Fatalf("TempFile(%q, %q): got error %v, want nil", "uploads", "blob-", err)
		}
		name := f.Name()
		if path.Dir(name) != "uploads" {
			t.Errorf("TempFile: Name() = %q, want it inside %q", name, "uploads")
		}
		if !strings.HasPrefix(path.Base(name), "blob-") {
			t.Errorf("TempFile: Name() = %q, want base prefixed with %q", name, "blob-")
		}

		if _, err := f.Write([]byte("temporary")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		expectContent(t, filesystem, name, []byte("temporary"))

		if err := filesystem.Remove(name); err != nil {
			t.Errorf("Remove(%q): got error %v, want nil", name, err)
		}
	})

	t.Run("TempFileDefaultDir", func(t *testing.T) {
		skip(t, config, "TempFS/TempFileDefaultDir")
		f, err := filesystem.TempFile("", "blob-")
		if err != nil {
			t.Fatalf("TempFile(%q, %q): got error %v, want nil", "", "blob-", err)
		}
		name := f.Name()
		_ = f.Close()
		defer func() { _ = filesystem.Remove(name) }()

		if dir := path.Dir(name); dir == "/" || dir == "." {
			t.Errorf("TempFile(%q): Name() = %q, want it outside the provider root", "", name)
		}
		entries, err := filesystem.ReadDir("/")
		if err != nil {
			t.Fatalf("ReadDir(/): got error %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "blob-") {
				t.Errorf("ReadDir(/): found %q, want no temp file at the root", e.Name())
			}
		}
		if ok, _ := filesystem.Exists(name); !ok {
			t.Errorf("Exists(%q) = false, want true", name)
		}
	})

	t.Run("TempFileUnique", func(t *testing.T) {
		skip(t, config, "TempFS/TempFileUnique")
		seen := make(map[string]bool)
		for range 5 {
			f, err := filesystem.TempFile("uploads", "dup-")
			if err != nil {
				t.Fatalf("TempFile(): got error %v", err)
			}
			_ = f.Close()
			if seen[f.Name()] {
				t.Errorf("TempFile(): duplicate name %q", f.Name())
			}
			seen[f.Name()] = true
		}
	})
}
