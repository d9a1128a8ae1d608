package transfer

import (
	"context"
	"errors"
	"io"

	"golang.org/x/time/rate"
)

// Copy reads src until EOF and writes everything to dst. It returns the
// number of bytes written and the first error encountered. Reader and
// writer errors are returned unchanged. The context is checked before every
// chunk, so cancellation surfaces as ctx.Err().
func Copy(ctx context.Context, dst io.Writer, src io.Reader, opts ...Option) (int64, error) {
	o := newOptions(opts)
	buf := make([]byte, o.bufferSize)

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		nr, rerr := src.Read(buf)
		if nr > 0 {
			if err := wait(ctx, o.limiter, nr); err != nil {
				return written, err
			}
			nw, werr := dst.Write(buf[:nr])
			if nw < 0 || nw > nr {
				nw = 0
				if werr == nil {
					werr = errors.New("transfer: invalid write result")
				}
			}
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, nil
			}
			return written, rerr
		}
	}
}

// wait blocks until the limiter admits n bytes. WaitN rejects requests
// larger than the burst, so oversize chunks are admitted in burst-sized
// pieces.
func wait(ctx context.Context, l *rate.Limiter, n int) error {
	if l == nil {
		return nil
	}
	burst := l.Burst()
	if burst <= 0 {
		return nil
	}
	for n > 0 {
		step := min(n, burst)
		if err := l.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

// Pipe copies src into dst and closes both. It completes only after dst has
// been closed, so a nil error means the destination accepted every byte.
// A copy failure takes precedence over a close failure of dst. Errors from
// closing src are ignored.
func Pipe(ctx context.Context, dst io.WriteCloser, src io.ReadCloser, opts ...Option) (int64, error) {
	n, err := Copy(ctx, dst, src, opts...)
	_ = src.Close()
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return n, err
}
