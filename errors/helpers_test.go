package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeNotFound, "not found")
	wrapped := WrapWithContext(sentinel, CodeRead, "lookup failed", nil)

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeInvalidInput, "invalid")))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", Read("failed", nil, nil))

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeRead, platformErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  NotFound("file not found", nil, nil),
			want: CodeNotFound,
		},
		{
			name: "wrapped platform error",
			err:  WrapWithContext(New(CodeInternal, "boom"), CodeRead, "read failed", nil),
			want: CodeRead,
		},
		{
			name: "fmt wrapped platform error",
			err:  fmt.Errorf("context: %w", Write("failed", nil, nil)),
			want: CodeWrite,
		},
		{
			name: "standard error",
			err:  stderrors.New("standard error"),
			want: CodeUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetContext(t *testing.T) {
	err := Read("failed", nil, map[string]interface{}{"name": "wombat"})

	require.Equal(t, "wombat", GetContext(err)["name"])
	require.Nil(t, GetContext(stderrors.New("plain")))
	require.Nil(t, GetContext(nil))
}

func TestDomainPredicates(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
		read     bool
		write    bool
	}{
		{"not found", NotFound("x", nil, nil), true, false, false},
		{"read", Read("x", nil, nil), false, true, false},
		{"write", Write("x", nil, nil), false, false, true},
		{"plain", stderrors.New("x"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.notFound, IsNotFound(tt.err))
			require.Equal(t, tt.read, IsRead(tt.err))
			require.Equal(t, tt.write, IsWrite(tt.err))
		})
	}
}
