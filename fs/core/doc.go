// Package core defines the raw filesystem capabilities a storage backend
// depends on, and the classifier that turns provider errors into a closed
// set of kinds.
//
// Backends never call the os package directly. They receive an FS at
// construction time, which lets production code run against the local disk
// while tests substitute an in-memory filesystem or a wrapper that injects
// failures.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove, RemoveAll, Rename
//   - TempFS: TempFile
//
// Optional file capabilities are discovered with type assertions:
//
//	if s, ok := file.(core.Syncer); ok {
//	    err = s.Sync()
//	}
//
// # Error Classification
//
// Providers return errors that satisfy errors.Is against the io/fs
// sentinels. Classify reduces any such error to an ErrorKind so callers
// choose a domain error without inspecting provider-specific types:
//
//	switch core.Classify(err) {
//	case core.ErrorKindNotFound:
//	    // target absent
//	case core.ErrorKindOtherIO:
//	    // anything else
//	}
//
// # Providers
//
// Concrete implementations live in sibling packages:
//
//   - github.com/rightson/overleaf/fs/billy - go-billy backed local and in-memory providers
package core
