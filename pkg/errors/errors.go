package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Caller contract violations
	ErrNilSource       ErrorCode = "NIL_SOURCE"
	ErrNoSource        ErrorCode = "NO_SOURCE"
	ErrNotIdentifiable ErrorCode = "NOT_IDENTIFIABLE"
	ErrUnknownKind     ErrorCode = "UNKNOWN_KIND"

	// CLI configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// BoxesError represents a structured error with code and details
type BoxesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoxesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BoxesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BoxesError) Is(target error) bool {
	var targetErr *BoxesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoxesError with the given code and message
func New(code ErrorCode, message string) *BoxesError {
	return &BoxesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoxesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoxesError {
	return &BoxesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoxesError
func Wrap(err error, code ErrorCode, message string) *BoxesError {
	if err == nil {
		return nil
	}
	return &BoxesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoxesError {
	if err == nil {
		return nil
	}
	return &BoxesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining
func (e *BoxesError) WithDetail(key string, value interface{}) *BoxesError {
	e.Details[key] = value
	return e
}

// IsCode checks whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	var boxesErr *BoxesError
	if errors.As(err, &boxesErr) {
		return boxesErr.Code == code
	}
	return false
}
