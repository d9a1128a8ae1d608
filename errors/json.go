package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error. The cause chain is
// excluded because it may contain absolute filesystem paths.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Plain errors map to CodeUnknown with their Error() text as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		resp.Code = string(platformErr.Code())
		resp.Message = platformErr.Message()
		resp.Classification = string(platformErr.Classification())
		resp.Context = platformErr.Context()
	}
	return resp
}

// MarshalJSON implements json.Marshaler so a PlatformError can be embedded
// directly in log records and API payloads.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, &platformError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
