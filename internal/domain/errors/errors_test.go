package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapbook/internal/errors"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrInvalidRating.WithDetails("got 9")

	assert.True(t, errors.Is(detailed, ErrInvalidRating))
	assert.False(t, errors.Is(detailed, ErrInvalidAddress))
	assert.Equal(t, "got 9", detailed.Details())
	assert.Empty(t, ErrInvalidRating.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrVisibilityQueryFailed.WrapMessage("public query")

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "VISIBILITY_QUERY_FAILED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "public query")
}

func TestStoreExecuteError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := NewStoreExecuteError(cause, "find addresses")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "find addresses", err.Details())
	assert.Contains(t, err.Error(), "deadline exceeded")
}
