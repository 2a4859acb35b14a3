// Package errs holds the sentinel errors shared by the store, service and
// API layers. Callers wrap them with fmt.Errorf("...: %w", err) and the API
// maps them to status codes with errors.Is.
package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/techblog-api/internal/models"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("operation not allowed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationErr carries field-level validation failures. It unwraps to
// ErrInvalidInput.
type ValidationErr struct {
	Errors []models.ValidationError
}

func NewValidationErr(errors []models.ValidationError) *ValidationErr {
	return &ValidationErr{Errors: errors}
}

func (e *ValidationErr) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("%d validation errors", len(e.Errors))
}

func (e *ValidationErr) Unwrap() error {
	return ErrInvalidInput
}

// StatusCode maps an error to the HTTP status the API should answer with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
