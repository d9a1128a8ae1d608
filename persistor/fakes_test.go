package persistor

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"sync"
	"syscall"
	"testing"

	"github.com/rightson/overleaf/fs/billy"
	"github.com/rightson/overleaf/fs/core"
	"github.com/stretchr/testify/require"
)

var (
	errGuru   = &fs.PathError{Op: "op", Path: "/foo", Err: syscall.EIO}
	errNoEnt  = &fs.PathError{Op: "op", Path: "/foo", Err: syscall.ENOENT}
	errAccess = &fs.PathError{Op: "op", Path: "/foo", Err: syscall.EACCES}
)

// faultFS wraps an in-memory filesystem, records calls and injects errors
// keyed by operation and path.
type faultFS struct {
	*billy.MemoryFS

	mu    sync.Mutex
	calls []string
	errs  map[string]error
}

func newFaultFS() *faultFS {
	return &faultFS{MemoryFS: billy.NewMemory(), errs: make(map[string]error)}
}

// fail makes op on path return err. Ops are open, create, stat, readdir,
// remove, removeall, plus read and write which fail the first Read or
// Write on the opened file.
func (f *faultFS) fail(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[op+" "+path] = err
}

func (f *faultFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op+" "+path)
	return f.errs[op+" "+path]
}

func (f *faultFS) injected(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[op+" "+path]
}

func (f *faultFS) called(op, path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == op+" "+path {
			return true
		}
	}
	return false
}

func (f *faultFS) Open(name string) (fs.File, error) {
	if err := f.check("open", name); err != nil {
		return nil, err
	}
	file, err := f.MemoryFS.Open(name)
	if err != nil {
		return nil, err
	}
	if rerr := f.injected("read", name); rerr != nil {
		return &failingReadFile{File: file, err: rerr}, nil
	}
	return file, nil
}

func (f *faultFS) Create(name string) (core.File, error) {
	if err := f.check("create", name); err != nil {
		return nil, err
	}
	file, err := f.MemoryFS.Create(name)
	if err != nil {
		return nil, err
	}
	if werr := f.injected("write", name); werr != nil {
		return &failingWriteFile{File: file, err: werr}, nil
	}
	return file, nil
}

func (f *faultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("stat", name); err != nil {
		return nil, err
	}
	return f.MemoryFS.Stat(name)
}

func (f *faultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.MemoryFS.ReadDir(name)
}

func (f *faultFS) Remove(name string) error {
	if err := f.check("remove", name); err != nil {
		return err
	}
	return f.MemoryFS.Remove(name)
}

func (f *faultFS) RemoveAll(name string) error {
	if err := f.check("removeall", name); err != nil {
		return err
	}
	return f.MemoryFS.RemoveAll(name)
}

// failingReadFile hides io.ReaderAt and io.Seeker so every read goes
// through Read.
type failingReadFile struct {
	fs.File
	err error
}

func (f *failingReadFile) Read([]byte) (int, error) { return 0, f.err }

type failingWriteFile struct {
	core.File
	err error
}

func (f *failingWriteFile) Write([]byte) (int, error) { return 0, f.err }

// recordingTempWriter stages streams into an in-memory filesystem at a
// fixed path and records every call.
type recordingTempWriter struct {
	fs        core.FS
	path      string
	writeErr  error
	deleteErr error

	mu      sync.Mutex
	sources []io.Reader
	deleted []string
}

func newRecordingTempWriter(fsys core.FS) *recordingTempWriter {
	return &recordingTempWriter{fs: fsys, path: "/tmp/potato.txt"}
}

func (w *recordingTempWriter) WriteStream(_ context.Context, src io.Reader) (string, error) {
	w.mu.Lock()
	w.sources = append(w.sources, src)
	w.mu.Unlock()
	if w.writeErr != nil {
		return "", w.writeErr
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if err := w.fs.WriteFile(w.path, data, 0o600); err != nil {
		return "", err
	}
	return w.path, nil
}

func (w *recordingTempWriter) DeleteFile(_ context.Context, path string) error {
	w.mu.Lock()
	w.deleted = append(w.deleted, path)
	w.mu.Unlock()
	if w.deleteErr != nil {
		return w.deleteErr
	}
	return w.fs.Remove(path)
}

// recordingLogger captures Error records.
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func writeBlob(t *testing.T, fsys core.FS, path string, data []byte) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, data, 0o644))
}

func readBlob(t *testing.T, fsys core.FS, path string) []byte {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return data
}

func payload(n int) []byte {
	return bytes.Repeat([]byte("0123456789abcdef"), n/16+1)[:n]
}
