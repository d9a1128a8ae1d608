package persistor

import (
	"context"
	"io"

	"github.com/rightson/overleaf/transfer"
)

// SendFile stores the local file at sourcePath under key. Errors are
// returned unchanged.
func (p *FSPersistor) SendFile(ctx context.Context, location, key, sourcePath string) error {
	return p.pipeFile(ctx, sourcePath, resolve(location, key))
}

// SendStream stores everything read from src under key. The stream is first
// staged by the TempWriter; a staging failure is returned unchanged. Once
// staged, the temporary file is deleted exactly once whatever the outcome.
// A transfer error takes precedence over a cleanup error.
func (p *FSPersistor) SendStream(ctx context.Context, location, key string, src io.Reader) (err error) {
	tempPath, err := p.temp.WriteStream(ctx, src)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := p.temp.DeleteFile(context.WithoutCancel(ctx), tempPath); cerr != nil {
			p.logger.Error("failed to delete temp file", "temp_path", tempPath, "error", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	if err := p.pipeFile(ctx, tempPath, resolve(location, key)); err != nil {
		p.logger.Error("failed to store stream", "location", location, "key", key, "error", err)
		return err
	}
	return nil
}

// CopyFile copies sourceKey to destinationKey within location. Errors are
// returned unchanged.
func (p *FSPersistor) CopyFile(ctx context.Context, location, sourceKey, destinationKey string) error {
	return p.pipeFile(ctx, resolve(location, sourceKey), resolve(location, destinationKey))
}

// pipeFile streams the file at src into dst, creating or truncating dst.
func (p *FSPersistor) pipeFile(ctx context.Context, src, dst string) error {
	in, err := p.fs.Open(src)
	if err != nil {
		return err
	}
	out, err := p.fs.Create(dst)
	if err != nil {
		_ = in.Close()
		return err
	}

	n, err := transfer.Pipe(ctx, out, in, p.transfer...)
	if err != nil {
		return err
	}
	p.logger.Info("stored file", "path", dst, "bytes", n)
	return nil
}
