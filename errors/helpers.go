package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// It is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode of the outermost PlatformError in err's
// chain. Returns CodeUnknown if err is nil or carries no PlatformError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetContext returns the context of the outermost PlatformError in err's
// chain, or nil.
func GetContext(err error) map[string]interface{} {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Context()
	}
	return nil
}

// IsNotFound reports whether err is a CodeNotFound domain error.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsRead reports whether err is a CodeRead domain error.
func IsRead(err error) bool {
	return GetCode(err) == CodeRead
}

// IsWrite reports whether err is a CodeWrite domain error.
func IsWrite(err error) bool {
	return GetCode(err) == CodeWrite
}
