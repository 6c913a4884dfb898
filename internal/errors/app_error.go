package errors

import (
	"errors"
	"net/http"
)

// AppError is the only error type that crosses the service boundary. Fields
// is set for validation failures and carries the field→messages mapping the
// envelope exposes.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Fields     map[string][]string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeDatabase     = "DATABASE_ERROR"
)

// ValidationError carries a field→messages mapping and maps to 422.
func ValidationError(fields map[string][]string) *AppError {
	e := NewAppError(ErrCodeValidation, "Validation failed", http.StatusUnprocessableEntity)
	e.Fields = fields

	return e
}

// FieldError is shorthand for a single-field validation failure.
func FieldError(field, message string) *AppError {
	return ValidationError(map[string][]string{field: {message}})
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabase, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
