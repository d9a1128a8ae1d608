package persistor

import "context"

// DeleteFile removes key. Errors, including a missing file, are returned
// unchanged.
func (p *FSPersistor) DeleteFile(_ context.Context, location, key string) error {
	return p.fs.Remove(resolve(location, key))
}

// DeleteDirectory removes the directory key and everything below it. A
// missing directory is not an error.
func (p *FSPersistor) DeleteDirectory(_ context.Context, location, key string) error {
	return p.fs.RemoveAll(resolve(location, key))
}
