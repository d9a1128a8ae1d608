package errors

// New creates a new PlatformError with the given code and message.
// The classification is the default for the code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "location is required")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// NotFound creates a CodeNotFound error. The cause may be nil; info is
// copied.
//
// Example:
//
//	return errors.NotFound("file not found", err, map[string]interface{}{
//	    "location": location,
//	    "key":      key,
//	})
func NotFound(message string, cause error, info map[string]interface{}) PlatformError {
	return newDomain(CodeNotFound, message, cause, info)
}

// Read creates a CodeRead error for read-path failures. The cause may be
// nil; info is copied.
func Read(message string, cause error, info map[string]interface{}) PlatformError {
	return newDomain(CodeRead, message, cause, info)
}

// Write creates a CodeWrite error for write-path failures. The cause may be
// nil; info is copied.
func Write(message string, cause error, info map[string]interface{}) PlatformError {
	return newDomain(CodeWrite, message, cause, info)
}

func newDomain(code ErrorCode, message string, cause error, info map[string]interface{}) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		context:        copyContext(info),
		cause:          cause,
	}
}
