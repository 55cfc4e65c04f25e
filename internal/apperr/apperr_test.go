package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusByKind(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation(FieldError{Field: "title", Message: "title is required"}), http.StatusBadRequest},
		{"duplicate", Duplicate("email"), http.StatusBadRequest},
		{"bad id", BadID(), http.StatusBadRequest},
		{"unauthorized", Unauthorized("invalid token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden},
		{"not found", NotFound("event not found"), http.StatusNotFound},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestDuplicateMessage(t *testing.T) {
	err := Duplicate("email")
	assert.Equal(t, "email already exists", err.Message)
	require.Len(t, err.Fields, 1)
	assert.Equal(t, "email", err.Fields[0].Field)
}

func TestFromPassesThroughTaggedErrors(t *testing.T) {
	orig := NotFound("event not found")
	got := From(fmt.Errorf("lookup failed: %w", orig))
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "event not found", got.Message)
}

func TestFromWrapsUnknownAsInternal(t *testing.T) {
	got := From(errors.New("connection reset"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status())
	assert.Equal(t, "Internal server error", got.Message)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
}
