package apierrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		wantCode int
		wantMsg  string
	}{
		{"unauthorized", NewErrUnauthorized("nope"), http.StatusUnauthorized, "nope"},
		{"bad request", NewErrBadRequest("bad"), http.StatusBadRequest, "bad"},
		{"forbidden", NewErrForbidden("no"), http.StatusForbidden, "no"},
		{"not found", NewErrNotFound("gone"), http.StatusNotFound, "gone"},
		{"conflict", NewErrConflict("taken"), http.StatusConflict, "taken"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNewErrInternalServerError_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewErrInternalServerError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Something went wrong on our end", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	var apiErr *APIError
	assert.True(t, errors.As(error(err), &apiErr))
}
