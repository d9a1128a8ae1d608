package persistor

import (
	"context"
	"io"
)

// Persistor is the blob storage contract implemented by FSPersistor.
type Persistor interface {
	SendFile(ctx context.Context, location, key, sourcePath string) error
	SendStream(ctx context.Context, location, key string, src io.Reader) error
	GetFileStream(ctx context.Context, location, key string, opts ...StreamOption) (io.ReadCloser, error)
	GetFileSize(ctx context.Context, location, key string) (int64, error)
	GetFileMD5Hash(ctx context.Context, location, key string) (string, error)
	CopyFile(ctx context.Context, location, sourceKey, destinationKey string) error
	DeleteFile(ctx context.Context, location, key string) error
	DeleteDirectory(ctx context.Context, location, key string) error
	CheckIfFileExists(ctx context.Context, location, key string) (bool, error)
	DirectorySize(ctx context.Context, location, name string) (int64, error)
}

// TempWriter stages a stream in a temporary file.
type TempWriter interface {
	// WriteStream copies src to a new temporary file and returns its path.
	WriteStream(ctx context.Context, src io.Reader) (string, error)
	// DeleteFile removes a file returned by WriteStream.
	DeleteFile(ctx context.Context, path string) error
}

// Logger receives structured log records. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

var _ Persistor = (*FSPersistor)(nil)
