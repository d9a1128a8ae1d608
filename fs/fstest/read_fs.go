package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/rightson/overleaf/fs/core"
)

// TestReadFSWithConfig tests read-only operations: Open, Stat, ReadDir,
// ReadFile and Exists, plus ranged reads on opened files.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("0123456789abcdef")

	if err := filesystem.MkdirAll("project", 0o755); err != nil {
		t.Fatalf("MkdirAll(project): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("project/blob", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(project/blob): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("project/nested", 0o755); err != nil {
		t.Fatalf("MkdirAll(project/nested): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		skip(t, config, "ReadFS/Open")
		f, err := filesystem.Open("project/blob")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "project/blob", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("Read(): got %q, want %q", data, testContent)
		}
	})

	t.Run("ReadAt", func(t *testing.T) {
		skip(t, config, "ReadFS/ReadAt")
		f, err := filesystem.Open("project/blob")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "project/blob", err)
		}
		defer func() { _ = f.Close() }()

		ra, ok := f.(io.ReaderAt)
		if !ok {
			t.Skip("file does not implement io.ReaderAt")
		}
		buf := make([]byte, 4)
		if _, err := ra.ReadAt(buf, 10); err != nil {
			t.Fatalf("ReadAt(10): got error %v", err)
		}
		if string(buf) != "abcd" {
			t.Errorf("ReadAt(10): got %q, want %q", buf, "abcd")
		}
	})

	t.Run("Seek", func(t *testing.T) {
		skip(t, config, "ReadFS/Seek")
		f, err := filesystem.Open("project/blob")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "project/blob", err)
		}
		defer func() { _ = f.Close() }()

		s, ok := f.(io.Seeker)
		if !ok {
			t.Skip("file does not implement io.Seeker")
		}
		if _, err := s.Seek(12, io.SeekStart); err != nil {
			t.Fatalf("Seek(12): got error %v", err)
		}
		rest, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll() after Seek: got error %v", err)
		}
		if string(rest) != "cdef" {
			t.Errorf("ReadAll() after Seek: got %q, want %q", rest, "cdef")
		}
	})

	t.Run("Stat", func(t *testing.T) {
		skip(t, config, "ReadFS/Stat")
		info, err := filesystem.Stat("project/blob")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "project/blob", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", "project/blob")
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", "project/blob", info.Size(), len(testContent))
		}

		dir, err := filesystem.Stat("project")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "project", err)
		}
		if !dir.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "project")
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		skip(t, config, "ReadFS/ReadDir")
		entries, err := filesystem.ReadDir("project")
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", "project", err)
		}
		if len(entries) != 2 {
			t.Fatalf("ReadDir(%q): got %d entries, want 2", "project", len(entries))
		}
		if entries[0].Name() != "blob" || entries[0].IsDir() {
			t.Errorf("ReadDir(%q): entry 0 = %q (dir=%v), want file %q", "project", entries[0].Name(), entries[0].IsDir(), "blob")
		}
		if entries[1].Name() != "nested" || !entries[1].IsDir() {
			t.Errorf("ReadDir(%q): entry 1 = %q (dir=%v), want dir %q", "project", entries[1].Name(), entries[1].IsDir(), "nested")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		skip(t, config, "ReadFS/ReadFile")
		data, err := filesystem.ReadFile("project/blob")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "project/blob", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", "project/blob", data, testContent)
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		skip(t, config, "ReadFS/NotExist")
		if _, err := filesystem.Open("missing"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "missing", err)
		}
		if _, err := filesystem.Stat("missing"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", "missing", err)
		}
		if _, err := filesystem.ReadDir("missing"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(%q): got error %v, want fs.ErrNotExist", "missing", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		skip(t, config, "ReadFS/Exists")
		for name, want := range map[string]bool{"project/blob": true, "project": true, "missing": false} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})
}
