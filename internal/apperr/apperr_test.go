package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"legalmarket/backend/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := apperr.New(apperr.ChatLocked, "chat is locked")
	assert.Equal(t, apperr.ChatLocked, apperr.KindOf(err))
	assert.True(t, apperr.IsKind(err, apperr.ChatLocked))
	assert.False(t, apperr.IsKind(err, apperr.Forbidden))

	assert.Equal(t, apperr.Unknown, apperr.KindOf(errors.New("plain")))
	assert.Equal(t, apperr.Unknown, apperr.KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := apperr.New(apperr.NotFound, "booking not found")
	wrapped := fmt.Errorf("loading conversation: %w", inner)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Wrap(apperr.Unavailable, "failed to load booking", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   apperr.Kind
		status int
	}{
		{apperr.NotFound, http.StatusNotFound},
		{apperr.Forbidden, http.StatusForbidden},
		{apperr.ChatLocked, http.StatusForbidden},
		{apperr.InvalidTransition, http.StatusUnprocessableEntity},
		{apperr.InvalidArgument, http.StatusBadRequest},
		{apperr.Conflict, http.StatusConflict},
		{apperr.Unauthorized, http.StatusUnauthorized},
		{apperr.Unavailable, http.StatusServiceUnavailable},
		{apperr.Unknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.HTTPStatus(), tt.kind.Code())
	}
}

// ChatLocked shares the 403 status with Forbidden but keeps a distinct code
// so clients can tell "not yours" from "not unlocked yet".
func TestChatLockedDistinctCode(t *testing.T) {
	assert.NotEqual(t, apperr.Forbidden.Code(), apperr.ChatLocked.Code())
}
