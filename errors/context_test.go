package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContextMap(t *testing.T) {
	err := New(CodeInvalidInput, "invalid byte range")
	err = WithContextMap(err, map[string]interface{}{"start": int64(5), "end": int64(4)})

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, int64(5), ctx["start"])
	require.Equal(t, int64(4), ctx["end"])
	require.Equal(t, CodeInvalidInput, err.Code())
}

func TestWithContextMap_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContextMap(stdErr, map[string]interface{}{"key": "value"})

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContextMap_NilError(t *testing.T) {
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

func TestWithContextMap_Immutability(t *testing.T) {
	original := New(CodeInternal, "internal")
	modified := WithContextMap(original, map[string]interface{}{"key": "value"})

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())

	ctx := modified.Context()
	ctx["key"] = "changed"
	require.Equal(t, "value", modified.Context()["key"])
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := Read("stat failed", nil, map[string]interface{}{"location": "/foo", "key": "a"})
	err = WithContextMap(err, map[string]interface{}{"key": "b", "name": "b"})

	ctx := err.Context()
	require.Equal(t, "/foo", ctx["location"])
	require.Equal(t, "b", ctx["key"])
	require.Equal(t, "b", ctx["name"])
}

func TestWithContextMap_PreservesCauseAndClassification(t *testing.T) {
	cause := stderrors.New("cause")
	err := WithContextMap(Read("failed", cause, nil), map[string]interface{}{"k": 1})

	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, CodeRead, err.Code())
	require.Equal(t, ClassificationRetryable, err.Classification())
}
