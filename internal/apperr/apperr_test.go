package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindInvalidData, http.StatusBadRequest},
		{KindAuthentication, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, New(tt.kind, "x").Status())
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := New(KindConflict, "User already registered")
	assert.ErrorIs(t, err, New(KindConflict, "any wording"))
	assert.NotErrorIs(t, err, New(KindValidation, "any wording"))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "Failed to register user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed to register user")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := New(KindNotFound, "Contact not found")
	outer := fmt.Errorf("while handling request: %w", inner)

	assert.True(t, IsKind(outer, KindNotFound))
	assert.False(t, IsKind(outer, KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}
