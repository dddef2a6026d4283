package errors

import "net/http"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Unwrap exposes the downstream failure, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same business error code, so copies made by
// WithDetails and WithCause still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		cause:     e.cause,
	}
}

// WithCause records the downstream failure and uses its text as details.
func (e *BaseError) WithCause(cause error) *BaseError {
	details := e.details
	if cause != nil && details == "" {
		details = cause.Error()
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		cause:     cause,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Missing or invalid input",
		"",
	)

	// Lookup errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrObjectNotFound = NewBaseError(
		http.StatusNotFound,
		"OBJECT_NOT_FOUND",
		"Image not found",
		"",
	)

	// Identity provider errors
	ErrExchangeFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXCHANGE_FAILED",
		"Failed to exchange authorization code",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusInternalServerError,
		"REFRESH_FAILED",
		"Failed to refresh access token",
		"",
	)

	ErrNoCredentials = NewBaseError(
		http.StatusInternalServerError,
		"NO_CREDENTIALS",
		"No credentials available, login required",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"No signed-in user",
		"",
	)

	// Storage provider errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to upload file",
		"",
	)

	ErrFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"FETCH_FAILED",
		"Failed to fetch image",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
