// Package persistor stores blobs as files on a filesystem.
//
// An FSPersistor maps a (location, key) pair to the file location/key,
// where the key has its path separators replaced so it can never name a
// nested or parent directory. Objects are written by streaming from a local
// path (SendFile), from an arbitrary reader staged through a temporary file
// (SendStream), or from another key (CopyFile), and read back as a ranged
// stream (GetFileStream).
//
// Read-path failures are reported as platform errors: a missing target is
// errors.CodeNotFound, anything else errors.CodeRead, each carrying the
// original cause and the caller's location and key. Write-path operations
// return the underlying error unchanged.
//
//	p := persistor.New(billy.NewLocal())
//	if err := p.SendStream(ctx, "/var/lib/blobs", "project/file", body); err != nil {
//	    return err
//	}
//	rc, err := p.GetFileStream(ctx, "/var/lib/blobs", "project/file", persistor.WithRange(0, 1023))
package persistor
