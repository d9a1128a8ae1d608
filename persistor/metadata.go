package persistor

import (
	"context"

	"github.com/rightson/overleaf/errors"
	"github.com/rightson/overleaf/fs/core"
	"golang.org/x/sync/errgroup"
)

// GetFileSize returns the size in bytes of key.
func (p *FSPersistor) GetFileSize(_ context.Context, location, key string) (int64, error) {
	info, err := p.fs.Stat(resolve(location, key))
	if err != nil {
		return 0, readError(err, "failed to stat file", map[string]interface{}{
			"location": location,
			"key":      key,
			"name":     key,
		})
	}
	return info.Size(), nil
}

// CheckIfFileExists reports whether key exists. A missing file is not an
// error.
func (p *FSPersistor) CheckIfFileExists(_ context.Context, location, key string) (bool, error) {
	_, err := p.fs.Stat(resolve(location, key))
	switch core.Classify(err) {
	case core.ErrorKindNone:
		return true, nil
	case core.ErrorKindNotFound:
		return false, nil
	default:
		return false, errors.Read("failed to stat file", err, keyInfo(location, key))
	}
}

// DirectorySize returns the summed size of the direct entries of the
// directory name. Entries are stat'ed concurrently; the first failure
// aborts the walk. An entry removed after listing counts as zero bytes.
func (p *FSPersistor) DirectorySize(ctx context.Context, location, name string) (int64, error) {
	dir := resolve(location, name)
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return 0, errors.Read("failed to get directory size", err, map[string]interface{}{
			"location": location,
			"name":     name,
		})
	}

	sizes := make([]int64, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.statConcurrency)
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := p.fs.Stat(dir + "/" + entry.Name())
			switch core.Classify(err) {
			case core.ErrorKindNone:
				sizes[i] = info.Size()
				return nil
			case core.ErrorKindNotFound:
				return nil
			default:
				return errors.Read("failed to get directory size", err, map[string]interface{}{
					"location": location,
					"name":     name,
					"entry":    entry.Name(),
				})
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, size := range sizes {
		total += size
	}
	return total, nil
}
