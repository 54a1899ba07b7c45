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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrTooManyHops ErrorCode = "TOO_MANY_HOPS"
)

// ReadlinksError represents a structured error with code and details
type ReadlinksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReadlinksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReadlinksError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReadlinksError) Is(target error) bool {
	var targetErr *ReadlinksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReadlinksError with the given code and message
func New(code ErrorCode, message string) *ReadlinksError {
	return &ReadlinksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReadlinksError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReadlinksError {
	return &ReadlinksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReadlinksError
func Wrap(err error, code ErrorCode, message string) *ReadlinksError {
	if err == nil {
		return nil
	}
	return &ReadlinksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReadlinksError {
	if err == nil {
		return nil
	}
	return &ReadlinksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ReadlinksError) WithDetail(key string, value interface{}) *ReadlinksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rlErr *ReadlinksError
	if errors.As(err, &rlErr) {
		return rlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReadlinksError
func GetErrorCode(err error) ErrorCode {
	var rlErr *ReadlinksError
	if errors.As(err, &rlErr) {
		return rlErr.Code
	}
	return ErrUnknown
}
