package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_String(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op code message",
			err:  E(CodeNotFound, "catalog.ByID", "no tool with id gpt5", nil),
			want: "catalog.ByID: NOT_FOUND: no tool with id gpt5",
		},
		{
			name: "message from cause",
			err:  E(CodeUnavailable, "studio.dispatch", "", errors.New("connection reset")),
			want: "studio.dispatch: UNAVAILABLE: connection reset",
		},
		{
			name: "no op",
			err:  E(CodeInternal, "", "bucket missing", nil),
			want: "INTERNAL: bucket missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_PreservesExistingCode(t *testing.T) {
	inner := E(CodeDeclined, "studio.image", "", ErrNoImage)

	wrapped := Wrap(CodeUnavailable, "studio.dispatch", inner)

	code, ok := CodeFrom(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeDeclined, code)
	assert.ErrorIs(t, wrapped, ErrNoImage)
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(CodeInternal, "anywhere", nil))
}

func TestWrap_AddsOpToAnonymousError(t *testing.T) {
	inner := &Error{Code: CodeUnavailable, Message: "dial timeout"}

	wrapped := Wrap(CodeInternal, "capability.text", inner)

	assert.Equal(t, "capability.text", wrapped.Op)
	assert.Equal(t, CodeUnavailable, wrapped.Code)
}

func TestCodeFrom_Sentinels(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{ErrToolNotFound, CodeNotFound},
		{ErrUnknownPlan, CodeNotFound},
		{ErrUnknownCategory, CodeInvalidArgument},
		{ErrDuplicateToolID, CodeInvalidArgument},
		{ErrNoImage, CodeDeclined},
		{ErrUnknownProvider, CodeFailedPrecond},
		{ErrInsufficientCredits, CodeFailedPrecond},
		{ErrNotAuthenticated, CodeUnauthenticated},
		{ErrStoreClosed, CodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+tt.err.Error(), func(t *testing.T) {
			code, ok := CodeFrom(fmt.Errorf("outer: %w", tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestCodeFrom_UnknownError(t *testing.T) {
	_, ok := CodeFrom(errors.New("plain"))
	assert.False(t, ok)
	_, ok = CodeFrom(nil)
	assert.False(t, ok)
}
