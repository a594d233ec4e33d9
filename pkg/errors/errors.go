package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrValidation     = errors.New("validation failed")
	ErrPrecondition   = errors.New("precondition failed")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal error")
	ErrServiceUnavail = errors.New("service unavailable")
	ErrPaymentFailed  = errors.New("payment failed")
)

// AppError represents a structured application error with HTTP status mapping.
// Details carries user-facing messages when a single operation reports
// several problems at once (e.g. every violation found in payment details).
type AppError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Status  int      `json:"-"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Validation creates a 400 error listing every violation found.
func Validation(message string, details []string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: details,
		Status:  http.StatusBadRequest,
		Err:     ErrValidation,
	}
}

// PreconditionFailed creates a 409 error for an operation attempted before
// the state it depends on exists.
func PreconditionFailed(message string) *AppError {
	return &AppError{
		Code:    "PRECONDITION_FAILED",
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrPrecondition,
	}
}

// Conflict creates a 409 error.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrConflict,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// ServiceUnavailable creates a 503 error.
func ServiceUnavailable(message string) *AppError {
	return &AppError{
		Code:    "SERVICE_UNAVAILABLE",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     ErrServiceUnavail,
	}
}

// PaymentFailed creates a 422 error for a payment charge failure.
func PaymentFailed(message string) *AppError {
	return &AppError{
		Code:    "PAYMENT_FAILED",
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrPaymentFailed,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict), errors.Is(err, ErrPrecondition):
		return http.StatusConflict
	case errors.Is(err, ErrPaymentFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrServiceUnavail):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
