package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/rightson/overleaf/fs/core"
)

// TestManageFSWithConfig tests file management: Remove, RemoveAll, Rename.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("RemoveFile", func(t *testing.T) {
		skip(t, config, "ManageFS/RemoveFile")
		if err := filesystem.WriteFile("doomed", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(doomed): setup failed: %v", err)
		}
		if err := filesystem.Remove("doomed"); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", "doomed", err)
		}
		if _, err := filesystem.Stat("doomed"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q) after Remove: got error %v, want fs.ErrNotExist", "doomed", err)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		skip(t, config, "ManageFS/RemoveNotExist")
		if err := filesystem.Remove("never-existed"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(%q): got error %v, want fs.ErrNotExist", "never-existed", err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		skip(t, config, "ManageFS/RemoveAll")
		for _, name := range []string{"tree/one", "tree/sub/two", "tree/sub/deeper/three"} {
			if err := filesystem.WriteFile(name, []byte(name), 0o644); err != nil {
				t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
			}
		}
		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll(%q): got error %v, want nil", "tree", err)
		}
		if _, err := filesystem.Stat("tree"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q) after RemoveAll: got error %v, want fs.ErrNotExist", "tree", err)
		}
	})

	t.Run("RemoveAllNotExist", func(t *testing.T) {
		skip(t, config, "ManageFS/RemoveAllNotExist")
		if err := filesystem.RemoveAll("never-existed"); err != nil {
			t.Errorf("RemoveAll(%q): got error %v, want nil", "never-existed", err)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		skip(t, config, "ManageFS/Rename")
		if err := filesystem.WriteFile("old-name", []byte("moved"), 0o644); err != nil {
			t.Fatalf("WriteFile(old-name): setup failed: %v", err)
		}
		if err := filesystem.Rename("old-name", "new-name"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("old-name"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q) after Rename: got error %v, want fs.ErrNotExist", "old-name", err)
		}
		expectContent(t, filesystem, "new-name", []byte("moved"))
	})
}
