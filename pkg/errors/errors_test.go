package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NotFound("Game", nil), CodeNotFound, http.StatusNotFound},
		{Validation("name is required"), CodeValidation, http.StatusBadRequest},
		{Unauthorized("missing token", nil), CodeUnauthenticated, http.StatusUnauthorized},
		{Forbidden("nope", nil), CodeForbidden, http.StatusForbidden},
		{Conflict("Game already has a license"), CodeConflict, http.StatusConflict},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.Status)
	}
}

func TestIsUnwrapsWrappedErrors(t *testing.T) {
	cause := stderrors.New("driver failure")
	err := fmt.Errorf("saving: %w", Internal("Failed to save game", cause))

	assert.True(t, Is(err, CodeInternal))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "NOT_FOUND: Game not found", NotFound("Game", nil).Error())
}
