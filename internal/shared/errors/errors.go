package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies application errors so the HTTP layer can map them to
// response statuses without inspecting messages.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeConflict    ErrorType = "CONFLICT_ERROR"
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE_ERROR"
	ErrorTypeInternal    ErrorType = "INTERNAL_ERROR"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrBlankField   = errors.New("required field is blank")
	ErrNoInsertedID = errors.New("store returned no inserted id")
	ErrStoreFailure = errors.New("document store failure")
)

// AppError is an application error carrying a classification and the HTTP
// status it should surface as.
type AppError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	HTTPCode int       `json:"-"`
	Cause    error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates an application error with an explicit classification.
func NewAppError(errorType ErrorType, message string, httpCode int) *AppError {
	return &AppError{Type: errorType, Message: message, HTTPCode: httpCode}
}

// NewValidationError reports rejected input. It maps to 406 Not Acceptable,
// matching the contract the API has always exposed for bad entity fields.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrorTypeValidation, message, http.StatusNotAcceptable)
}

// NewNotFoundError reports an update or delete against a missing entity.
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrorTypeNotFound, message, http.StatusNotFound)
}

// NewConflictError reports a duplicate natural key.
func NewConflictError(message string) *AppError {
	return NewAppError(ErrorTypeConflict, message, http.StatusConflict)
}

// NewUnavailableError reports a write the store did not acknowledge.
func NewUnavailableError(message string) *AppError {
	return NewAppError(ErrorTypeUnavailable, message, http.StatusServiceUnavailable)
}

// NewInternalError reports an unexpected failure.
func NewInternalError(message string) *AppError {
	return NewAppError(ErrorTypeInternal, message, http.StatusInternalServerError)
}

// WrapError normalizes err into an AppError, passing AppErrors through.
func WrapError(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// IsNotFound reports whether err classifies as a missing-entity failure.
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err classifies as rejected input.
func IsValidation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeValidation
	}
	return errors.Is(err, ErrBlankField)
}

// IsConflict reports whether err classifies as a duplicate natural key.
func IsConflict(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeConflict
	}
	return errors.Is(err, ErrDuplicateKey)
}

// IsUnavailable reports whether err classifies as an unacknowledged write.
func IsUnavailable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeUnavailable
	}
	return errors.Is(err, ErrNoInsertedID)
}

// HTTPStatus returns the response status for err, defaulting to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.HTTPCode != 0 {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}
