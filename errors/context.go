package errors

// WithContextMap returns a new PlatformError with the given fields merged
// into its context. New fields override existing ones with the same key.
//
// If err is not a PlatformError it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	merged := make(map[string]interface{})
	for k, v := range platformErr.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}
