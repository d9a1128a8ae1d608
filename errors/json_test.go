package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	resp := ToJSON(NotFound("file not found", nil, nil))

	require.NotNil(t, resp)
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "file not found", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Nil(t, resp.Context)
}

func TestToJSON_WithContext(t *testing.T) {
	err := Read("failed to list directory", stderrors.New("EIO"), map[string]interface{}{
		"location": "/foo",
		"name":     "wombat",
	})

	resp := ToJSON(err)

	require.Equal(t, "READ_ERROR", resp.Code)
	require.Equal(t, "failed to list directory", resp.Message)
	require.Equal(t, "RETRYABLE", resp.Classification)
	require.Equal(t, "/foo", resp.Context["location"])
	require.Equal(t, "wombat", resp.Context["name"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("something went wrong"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "something went wrong", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON_ExcludesCause(t *testing.T) {
	err := Read("failed to open file for streaming", stderrors.New("open /secret/path: EIO"), map[string]interface{}{
		"key": "a.txt",
	})

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.NotContains(t, string(data), "/secret/path")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, "READ_ERROR", resp.Code)
	require.Equal(t, "a.txt", resp.Context["key"])
}
