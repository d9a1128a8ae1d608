// Package tempfile stages incoming streams on disk so they can be re-read
// from a file path.
package tempfile

import (
	"context"
	"io"
	"log/slog"

	"github.com/rightson/overleaf/errors"
	"github.com/rightson/overleaf/fs/core"
	"github.com/rightson/overleaf/transfer"
)

// DefaultPrefix is prepended to every staged file name.
const DefaultPrefix = "upload-"

// FS is the filesystem capability a Writer needs.
type FS interface {
	core.TempFS
	core.ManageFS
}

// Writer writes streams to uniquely named temporary files.
// It is safe for concurrent use.
type Writer struct {
	fs       FS
	dir      string
	prefix   string
	transfer []transfer.Option
	logger   *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithDir sets the directory staged files are created in. An empty dir
// means the provider's default temporary directory.
func WithDir(dir string) Option {
	return func(w *Writer) {
		w.dir = dir
	}
}

// WithPrefix sets the file name prefix.
func WithPrefix(prefix string) Option {
	return func(w *Writer) {
		w.prefix = prefix
	}
}

// WithTransferOptions sets the options used when copying into the staged
// file.
func WithTransferOptions(opts ...transfer.Option) Option {
	return func(w *Writer) {
		w.transfer = opts
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// New creates a Writer over fsys.
func New(fsys FS, opts ...Option) *Writer {
	w := &Writer{
		fs:     fsys,
		prefix: DefaultPrefix,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteStream copies src into a new temporary file and returns its path.
// On failure no file is left behind.
func (w *Writer) WriteStream(ctx context.Context, src io.Reader) (string, error) {
	f, err := w.fs.TempFile(w.dir, w.prefix)
	if err != nil {
		return "", errors.Write("failed to create temp file", err, map[string]interface{}{
			"dir": w.dir,
		})
	}
	path := f.Name()

	n, err := transfer.Copy(ctx, f, src, w.transfer...)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := w.fs.Remove(path); rerr != nil && !core.IsNotExist(rerr) {
			w.logger.Error("failed to remove partial temp file", "temp_path", path, "error", rerr)
		}
		return "", errors.Write("failed to write temp file", err, map[string]interface{}{
			"temp_path": path,
		})
	}

	w.logger.Debug("staged stream", "temp_path", path, "bytes", n)
	return path, nil
}

// DeleteFile removes a staged file. A file that is already gone is not an
// error.
func (w *Writer) DeleteFile(_ context.Context, path string) error {
	if err := w.fs.Remove(path); err != nil && !core.IsNotExist(err) {
		return err
	}
	return nil
}
