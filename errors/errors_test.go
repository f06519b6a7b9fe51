package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodePathNotFound, "no such file")

	require.NotNil(t, err)
	require.Equal(t, CodePathNotFound, err.Code())
	require.Equal(t, "no such file", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[PATH_NOT_FOUND] no such file", err.Error())
}

func TestNew_AllCodes(t *testing.T) {
	codes := []Code{
		CodePathNotFound,
		CodeUndefinedVariable,
		CodeEncoding,
		CodePermission,
		CodeAlreadyExists,
		CodeInvalidOperation,
		CodeIO,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.Equal(t, code.String(), string(err.Code()))
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeUndefinedVariable, "undefined variable %q in %q", "name", "%name%/f.txt")

	require.NotNil(t, err)
	require.Equal(t, CodeUndefinedVariable, err.Code())
	require.Equal(t, `undefined variable "name" in "%name%/f.txt"`, err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := Wrap(cause, CodeIO, "write failed")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "write failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, cause))
	require.Equal(t, "[IO_ERROR] write failed: underlying failure", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "ignored"))
	require.Nil(t, Wrapf(nil, CodeIO, "ignored %d", 1))
	require.Nil(t, WithContext(nil, "key", "value"))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(cause, CodeEncoding, "decode as %s failed", "windows-1251")

	require.Equal(t, "decode as windows-1251 failed", err.Message())
	require.True(t, stderrors.Is(err, cause))
}

func TestWithContext(t *testing.T) {
	err := New(CodeEncoding, "decode failed")
	err = WithContext(err, "path", "/tmp/a.txt")
	err = WithContext(err, "encoding", "ascii")

	ctx := err.Context()
	require.Equal(t, "/tmp/a.txt", ctx["path"])
	require.Equal(t, "ascii", ctx["encoding"])
	require.Equal(t, CodeEncoding, err.Code())
}

func TestWithContext_ForeignError(t *testing.T) {
	err := WithContext(stderrors.New("plain"), "key", 42)

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, 42, err.Context()["key"])
}

func TestContext_DefensiveCopy(t *testing.T) {
	err := WithContext(New(CodeIO, "io"), "key", "original")

	ctx := err.Context()
	ctx["key"] = "mutated"

	require.Equal(t, "original", err.Context()["key"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, CodeUnknown},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"coded error", New(CodePermission, "denied"), CodePermission},
		{"wrapped coded error", fmt.Errorf("outer: %w", New(CodeAlreadyExists, "exists")), CodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New(CodePathNotFound, "missing"), CodeIO, "read failed")

	// The outermost code wins.
	require.True(t, HasCode(err, CodeIO))
	require.False(t, HasCode(err, CodePathNotFound))
}

func TestAs(t *testing.T) {
	var coded Error
	err := fmt.Errorf("wrapped: %w", New(CodeInvalidOperation, "not writable"))

	require.True(t, As(err, &coded))
	require.Equal(t, CodeInvalidOperation, coded.Code())
}
