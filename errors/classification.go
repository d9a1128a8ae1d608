package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

var defaultClassifications = map[ErrorCode]ErrorClassification{
	// I/O failures are usually transient (EIO, EMFILE, ENOSPC cleared by an operator).
	CodeRead:  ClassificationRetryable,
	CodeWrite: ClassificationRetryable,

	CodeNotFound:      ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unmapped codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
