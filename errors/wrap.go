package errors

// WrapWithContext wraps an error and attaches context metadata in one step.
// The context map is copied. Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
