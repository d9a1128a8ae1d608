package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/rightson/overleaf/fs/core"
)

// File wraps billy.File to implement core.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation, and keeps a reference to the
// filesystem to support Stat.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// ReadAt implements io.ReaderAt so callers can read a byte range without
// moving the file offset.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat by asking the owning filesystem.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open, Create or TempFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Sync implements core.Syncer. It is a no-op for backends without sync
// support, such as memfs.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
)
