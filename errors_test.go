package mcpguide

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientError(t *testing.T) {
	err := &ClientError{Reason: "bad topic", Err: ErrValidation}
	assert.Contains(t, err.Error(), "bad topic")
	assert.True(t, IsClientError(err))
	assert.False(t, IsSystemError(err))
	assert.ErrorIs(t, err, ErrValidation)

	wrapped := fmt.Errorf("dispatch: %w", err)
	assert.True(t, IsClientError(wrapped))
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestSystemError_HidesCause(t *testing.T) {
	cause := errors.New("secret internal detail")
	err := &SystemError{Err: cause}
	assert.NotContains(t, err.Error(), "secret")
	assert.True(t, IsSystemError(err))
	assert.False(t, IsClientError(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrapJSONParseError(t *testing.T) {
	err := wrapJSONParseError(errors.New("unexpected end of input"))
	assert.True(t, IsClientError(err))
	assert.Contains(t, err.Error(), "json parse error")
}

func TestSentinels(t *testing.T) {
	assert.NotErrorIs(t, ErrToolNotFound, ErrValidation)
	assert.EqualError(t, ErrToolNotFound, "unknown tool")
}
