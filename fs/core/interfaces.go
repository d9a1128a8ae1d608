package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem contract required by storage backends.
// FS embeds fs.FS for stdlib compatibility.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	TempFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file should be closed when no longer needed. Callers may
	// type-assert it to io.ReaderAt or io.Seeker for ranged reads.
	Open(name string) (fs.File, error)

	// Stat returns file metadata.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the direct entries of the named directory sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing, creating
	// missing parent directories.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary
	// parents. It does nothing if path is already a directory.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, the error satisfies errors.Is(err, ErrNotExist).
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// If the path does not exist, RemoveAll returns nil.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// TempFS defines temporary file creation.
type TempFS interface {
	// TempFile creates a new temporary file in dir, opens it for reading
	// and writing, and returns it. The file name starts with prefix followed
	// by a random suffix. If dir is empty the provider's default temporary
	// directory is used; it is never the provider root.
	//
	// The caller is responsible for removing the file.
	TempFile(dir, prefix string) (File, error)
}

// File represents an open file handle.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open, Create or
	// TempFile, relative to the provider root.
	Name() string
}

// Syncer allows syncing file contents to stable storage.
//
// Not all File implementations support sync. Use a type assertion:
//
//	if s, ok := file.(Syncer); ok {
//	    err := s.Sync()
//	}
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}
