package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("taken"), http.StatusBadRequest},
		{"auth", Auth(ReasonExpired, "nope"), http.StatusUnauthorized},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestFromWrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", Auth(ReasonUserNotFound, "Could not validate credentials"))

	got := From(wrapped)
	assert.Equal(t, KindAuth, got.Kind)
	assert.Equal(t, ReasonUserNotFound, ReasonOf(wrapped))
	assert.True(t, IsKind(wrapped, KindAuth))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestFromPlainErrorIsInternal(t *testing.T) {
	cause := errors.New("db down")
	got := From(cause)

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "Internal server error", got.Detail)
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, AuthReason(""), ReasonOf(cause))
}
