package usecase

import (
	"errors"
	"fmt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validateID rejects identifiers that are not UUIDs.
func validateID(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest(fmt.Sprintf("Invalid %s ID format", what))
	}
	return nil
}

// notFoundOr maps domain.ErrNotFound to a 404 with message, passes AppErrors
// through, and wraps anything else as an internal error.
func notFoundOr(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return internal(err)
}

func internal(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(err)
}

func validateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}

func internalOrNil(err error) error {
	if err == nil {
		return nil
	}
	return internal(err)
}
