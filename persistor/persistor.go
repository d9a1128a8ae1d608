package persistor

import (
	"log/slog"

	"github.com/rightson/overleaf/config"
	"github.com/rightson/overleaf/fs/core"
	"github.com/rightson/overleaf/tempfile"
	"github.com/rightson/overleaf/transfer"
)

// FSPersistor implements Persistor on top of a core.FS.
// It holds no mutable state and is safe for concurrent use.
type FSPersistor struct {
	fs              core.FS
	temp            TempWriter
	logger          Logger
	transfer        []transfer.Option
	statConcurrency int
}

// Option configures an FSPersistor.
type Option func(*FSPersistor)

// WithTempWriter sets the collaborator used by SendStream to stage input.
// Defaults to a tempfile.Writer over the persistor's filesystem.
func WithTempWriter(w TempWriter) Option {
	return func(p *FSPersistor) {
		p.temp = w
	}
}

// WithLogger sets the logger. Defaults to discarding all records.
func WithLogger(l Logger) Option {
	return func(p *FSPersistor) {
		p.logger = l
	}
}

// WithTransferOptions sets the options applied to every byte transfer.
func WithTransferOptions(opts ...transfer.Option) Option {
	return func(p *FSPersistor) {
		p.transfer = opts
	}
}

// WithStatConcurrency bounds how many entries DirectorySize stats at once.
func WithStatConcurrency(n int) Option {
	return func(p *FSPersistor) {
		if n > 0 {
			p.statConcurrency = n
		}
	}
}

// New creates an FSPersistor over fsys.
func New(fsys core.FS, opts ...Option) *FSPersistor {
	p := &FSPersistor{
		fs:              fsys,
		logger:          slog.New(slog.DiscardHandler),
		statConcurrency: config.DefaultStatConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.temp == nil {
		p.temp = tempfile.New(fsys, tempfile.WithTransferOptions(p.transfer...))
	}
	return p
}

// NewFromConfig creates an FSPersistor from a finalized Config. Transfers
// share one rate limiter, so the configured rate caps the persistor's total
// throughput. The storage root and staging directory are created if
// missing.
func NewFromConfig(fsys core.FS, cfg *config.Config) (*FSPersistor, error) {
	for _, dir := range []string{cfg.Location, cfg.TempDir} {
		if dir == "" {
			continue
		}
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger()
	topts := []transfer.Option{
		transfer.WithBufferSize(int(cfg.BufferSizeBytes())),
		transfer.WithLimiter(transfer.NewLimiter(cfg.RateLimitBytes())),
	}
	temp := tempfile.New(fsys,
		tempfile.WithDir(cfg.TempDir),
		tempfile.WithLogger(logger),
		tempfile.WithTransferOptions(topts...),
	)

	return New(fsys,
		WithTempWriter(temp),
		WithLogger(logger),
		WithTransferOptions(topts...),
		WithStatConcurrency(cfg.StatConcurrency),
	), nil
}
