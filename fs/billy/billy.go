package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rightson/overleaf/fs/core"
)

// LocalFS wraps billy's osfs for local disk access.
type LocalFS struct {
	filesystem
}

// MemoryFS wraps billy's memfs for in-memory access.
type MemoryFS struct {
	filesystem
}

// Option configures filesystem creation.
type Option func(*options)

type options struct {
	root string
}

// WithRoot scopes the filesystem to root. All paths passed to the returned
// filesystem are resolved relative to it. Defaults to "/".
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

func newOptions(opts []Option) *options {
	o := &options{root: "/"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// scopedTempDir is the default temporary directory of a provider rooted
// somewhere other than the real filesystem root.
const scopedTempDir = "/tmp"

// NewLocal creates a go-billy-backed local filesystem. TempFile with an
// empty dir uses os.TempDir() when the root is "/", and /tmp below the root
// otherwise.
func NewLocal(opts ...Option) *LocalFS {
	o := newOptions(opts)
	tempDir := scopedTempDir
	if o.root == "/" {
		tempDir = os.TempDir()
	}
	return &LocalFS{filesystem{bfs: osfs.New(o.root), tempDir: tempDir}}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory(opts ...Option) *MemoryFS {
	o := newOptions(opts)
	var bfs billy.Filesystem = memfs.New()
	if o.root != "/" {
		// memfs.Chroot never fails.
		bfs, _ = bfs.Chroot(o.root)
	}
	return &MemoryFS{filesystem{bfs: bfs, tempDir: scopedTempDir}}
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// filesystem adapts a billy.Filesystem to everything in core.FS except Type.
type filesystem struct {
	bfs billy.Filesystem

	// tempDir replaces an empty dir in TempFile.
	tempDir string
}

// Unwrap returns the underlying billy.Filesystem.
func (b *filesystem) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

func (b *filesystem) wrap(f billy.File, name string) *File {
	return &File{file: f, fs: b.bfs, name: name}
}

// Open opens the named file for reading.
func (b *filesystem) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return b.wrap(f, name), nil
}

// Stat returns file metadata for the named file.
func (b *filesystem) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (b *filesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *filesystem) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *filesystem) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	switch core.Classify(err) {
	case core.ErrorKindNone:
		return true, nil
	case core.ErrorKindNotFound:
		return false, nil
	default:
		return false, err
	}
}

// Create creates or truncates the named file for writing. Missing parent
// directories are created.
func (b *filesystem) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return b.wrap(f, name), nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *filesystem) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return b.wrap(f, name), nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *filesystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *filesystem) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (b *filesystem) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains. A missing path is
// not an error.
func (b *filesystem) RemoveAll(path string) error {
	return util.RemoveAll(b.bfs, normalize(path))
}

// Rename renames (moves) oldpath to newpath.
func (b *filesystem) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// TempFile creates a uniquely named file in dir whose name begins with
// prefix. An empty dir selects the provider's temporary directory, never
// its root. The directory is created if missing.
func (b *filesystem) TempFile(dir, prefix string) (core.File, error) {
	if dir == "" {
		dir = b.tempDir
	}
	f, err := b.bfs.TempFile(normalize(dir), prefix)
	if err != nil {
		return nil, err
	}
	return b.wrap(f, normalize(f.Name())), nil
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
