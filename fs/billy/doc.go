// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps go-billy's osfs and is what a storage backend uses in
// production. MemoryFS wraps memfs and is intended for tests.
//
// Usage:
//
//	fsys := billy.NewLocal()
//	data, err := fsys.ReadFile("/var/lib/blobs/project_1")
//
//	mem := billy.NewMemory()
//	err = mem.WriteFile("/foo/bar", []byte("data"), 0o644)
//
// Files returned by Open support io.ReaderAt and io.Seeker, which ranged
// reads rely on.
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
