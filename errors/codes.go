package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Storage errors.

	// CodeNotFound indicates the requested object or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeRead indicates a read-path operation (open, stat, list) failed for
	// a reason other than the target being absent.
	CodeRead ErrorCode = "READ_ERROR"

	// CodeWrite indicates a write-path operation failed and any partial
	// output must be treated as corrupt.
	CodeWrite ErrorCode = "WRITE_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
