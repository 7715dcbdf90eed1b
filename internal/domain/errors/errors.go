package errors

import (
	"net/http"

	"hub/internal/errors"
)

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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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
	}
}

// Predefined error types
var (
	// Signup/login validation errors
	ErrMissingField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"Name, email and password are required",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	// The same error value covers both an unknown email and a wrong password,
	// so responses never reveal whether an account exists.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Session errors
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Missing session token",
		"",
	)

	ErrSessionMalformed = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_MALFORMED",
		"Invalid session token",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session has expired",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired session",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Bookmark/resource errors
	ErrInvalidReference = NewBaseError(
		http.StatusNotFound,
		"INVALID_REFERENCE",
		"User or resource not found",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid identifier format",
		"",
	)

	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"Resource not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Infrastructure errors
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected store failure without leaking
// internal detail to the client.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecute, message+": "+err.Error())
}
