// Package errors provides the structured error taxonomy used by the filestore.
//
// Every failure that leaves a storage backend is either a raw I/O error (for
// operations documented to propagate them) or a PlatformError carrying a
// code, a retry classification, an optional cause and an immutable context
// map. It stays fully compatible with the standard library errors package
// (errors.Is, errors.As, errors.Unwrap).
//
// # Domain Errors
//
// Storage backends report three domain conditions:
//
//	// The target does not exist.
//	err := errors.NotFound("file not found", cause, map[string]interface{}{
//	    "location": location,
//	    "key":      key,
//	})
//
//	// Any other failure on a read path (open, stat, list).
//	err := errors.Read("failed to open file for streaming", cause, info)
//
//	// A failure on a write path that callers must treat as corrupt output.
//	err := errors.Write("failed to write temp file", cause, info)
//
// Callers test the condition with IsNotFound, IsRead and IsWrite, or with
// GetCode when switching over several codes:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // 404
//	case errors.CodeRead, errors.CodeWrite:
//	    // 500, retry later
//	}
//
// # Context Metadata
//
// The info map passed to the constructors is copied, so later mutation by
// the caller never leaks into the error. WithContextMap and WrapWithContext
// return new errors instead of modifying their input.
//
//	err = errors.WithContextMap(err, map[string]interface{}{"start": start})
//
// The raw logical key supplied by the caller is what belongs in the context,
// not the sanitized on-disk name, so operators can correlate failures with
// application-level identifiers.
//
// # Classification
//
// Each code has a default classification. NotFound and validation failures
// are permanent; Read and Write are retryable. Wrapping a PlatformError
// keeps the inner classification. The classification is reported by
// Classification and in the JSON form.
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse without exposing the
// cause chain, which may contain absolute paths.
package errors
