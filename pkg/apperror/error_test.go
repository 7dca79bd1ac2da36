package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"job-portal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	t.Run("app errors keep their status", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, apperror.Code(apperror.NotFound("Post not found")))
		assert.Equal(t, http.StatusConflict, apperror.Code(apperror.Conflict("Email already registered")))
		assert.Equal(t, http.StatusUnauthorized, apperror.Code(apperror.Unauthorized("Invalid email or password")))
	})

	t.Run("wrapped app errors are found", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", apperror.Conflict("dup"))
		assert.True(t, apperror.Is(err, http.StatusConflict))
	})

	t.Run("plain errors are unclassified", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, apperror.Code(errors.New("boom")))
		assert.False(t, apperror.Is(nil, http.StatusInternalServerError))
	})
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperror.Internal(cause)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
}
