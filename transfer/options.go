package transfer

import "golang.org/x/time/rate"

// DefaultBufferSize is the chunk size used when none is configured.
const DefaultBufferSize = 32 * 1024

// Option configures a transfer.
type Option func(*options)

type options struct {
	bufferSize int
	limiter    *rate.Limiter
}

// WithBufferSize sets the chunk size. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithRateLimit caps throughput at bytesPerSec. Zero or negative disables
// throttling.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.limiter = NewLimiter(bytesPerSec)
	}
}

// NewLimiter returns a limiter admitting bytesPerSec bytes per second with a
// one second burst, or nil when bytesPerSec is zero or negative. A nil
// limiter disables throttling.
func NewLimiter(bytesPerSec int64) *rate.Limiter {
	if bytesPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
}

// WithLimiter shares an existing limiter across transfers so the cap applies
// to their combined throughput.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
