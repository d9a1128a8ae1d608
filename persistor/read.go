package persistor

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"math"

	"github.com/rightson/overleaf/errors"
	"github.com/rightson/overleaf/transfer"
)

// StreamOption restricts the byte range returned by GetFileStream.
type StreamOption func(*streamOptions)

type streamOptions struct {
	start  int64
	end    int64
	hasEnd bool
}

// WithStart begins the stream at byte offset start.
func WithStart(start int64) StreamOption {
	return func(o *streamOptions) {
		o.start = start
	}
}

// WithEnd ends the stream after byte offset end, inclusive.
func WithEnd(end int64) StreamOption {
	return func(o *streamOptions) {
		o.end = end
		o.hasEnd = true
	}
}

// WithRange limits the stream to bytes start through end, inclusive.
func WithRange(start, end int64) StreamOption {
	return func(o *streamOptions) {
		WithStart(start)(o)
		WithEnd(end)(o)
	}
}

// length returns the number of bytes the range covers, unbounded ranges
// running to the end of the file.
func (o *streamOptions) length() int64 {
	if !o.hasEnd {
		return math.MaxInt64 - o.start
	}
	return o.end - o.start + 1
}

func (o *streamOptions) validate() error {
	if o.start < 0 || (o.hasEnd && o.end < o.start) {
		return errors.WithContextMap(
			errors.New(errors.CodeInvalidInput, "invalid byte range"),
			map[string]interface{}{"start": o.start, "end": o.end},
		)
	}
	return nil
}

// handleStream reads a section of an open file and closes the file when
// the stream is closed.
type handleStream struct {
	io.Reader
	file fs.File
}

func (s *handleStream) Close() error {
	return s.file.Close()
}

// GetFileStream opens key and returns a stream over it, optionally limited
// to a byte range. The caller must close the stream.
func (p *FSPersistor) GetFileStream(ctx context.Context, location, key string, opts ...StreamOption) (io.ReadCloser, error) {
	o := &streamOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	f, err := p.fs.Open(resolve(location, key))
	if err != nil {
		return nil, readError(err, "failed to open file for streaming", keyInfo(location, key))
	}

	r, err := sectionOf(f, o)
	if err != nil {
		_ = f.Close()
		return nil, errors.Read("failed to open file for streaming", err, keyInfo(location, key))
	}
	return &handleStream{Reader: r, file: f}, nil
}

// sectionOf returns a reader over the requested range of f. It prefers
// io.ReaderAt, falls back to seeking, and finally to discarding the prefix.
func sectionOf(f fs.File, o *streamOptions) (io.Reader, error) {
	if ra, ok := f.(io.ReaderAt); ok {
		return io.NewSectionReader(ra, o.start, o.length()), nil
	}
	if o.start > 0 {
		if s, ok := f.(io.Seeker); ok {
			if _, err := s.Seek(o.start, io.SeekStart); err != nil {
				return nil, err
			}
		} else if _, err := io.CopyN(io.Discard, f, o.start); err != nil && err != io.EOF {
			return nil, err
		}
	}
	if !o.hasEnd {
		return f, nil
	}
	return io.LimitReader(f, o.length()), nil
}

// GetFileMD5Hash returns the lowercase hex MD5 digest of key's content.
func (p *FSPersistor) GetFileMD5Hash(ctx context.Context, location, key string) (string, error) {
	f, err := p.fs.Open(resolve(location, key))
	if err != nil {
		return "", readError(err, "failed to hash file", keyInfo(location, key))
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	if _, err := transfer.Copy(ctx, h, f, p.transfer...); err != nil {
		return "", errors.Read("failed to hash file", err, keyInfo(location, key))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
