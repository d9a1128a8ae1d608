package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed file.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported by the provider.
	ErrUnsupported = errors.New("operation not supported")
)

// ErrorKind is the closed set of conditions storage backends distinguish
// when a filesystem call fails.
type ErrorKind int

const (
	// ErrorKindNone means there was no error.
	ErrorKindNone ErrorKind = iota
	// ErrorKindNotFound means the target does not exist (ENOENT).
	ErrorKindNotFound
	// ErrorKindOtherIO covers every other failure.
	ErrorKindOtherIO
)

// String returns a string representation of the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindNotFound:
		return "not_found"
	default:
		return "other_io"
	}
}

// Classify maps a filesystem error to its ErrorKind. Only errors matching
// fs.ErrNotExist (including *fs.PathError wrapping ENOENT) are NotFound.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, fs.ErrNotExist):
		return ErrorKindNotFound
	default:
		return ErrorKindOtherIO
	}
}

// IsNotExist reports whether err classifies as ErrorKindNotFound.
func IsNotExist(err error) bool {
	return Classify(err) == ErrorKindNotFound
}
