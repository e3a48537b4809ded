package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderNotPending    = errors.New("order is not pending")
)

// Error codes surfaced in responses
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodePermission     = "PERMISSION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_FAULT"
)

// AppError represents an application error with HTTP status and
// optional per-field errors preserved for the response envelope.
type AppError struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a field-level validation error (400)
func Validation(message string, fieldErrors map[string]string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: message,
		Errors:  fieldErrors,
		Err:     ErrInvalidInput,
	}
}

// Authentication creates an authentication error (401)
func Authentication(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeAuthentication, message, err)
}

// Forbidden creates a permission error (403)
func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodePermission, message, ErrForbidden)
}

// NotFound creates a not-found error (404)
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// Conflict creates a conflict error (409)
func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

// InternalError wraps an unexpected error (500)
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "Internal Server Error", err)
}
