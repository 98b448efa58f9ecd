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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Projection errors
	ErrUnresolvable      ErrorCode = "UNRESOLVABLE"
	ErrNotSelfContained  ErrorCode = "NOT_SELF_CONTAINED"
	ErrComponentMismatch ErrorCode = "COMPONENT_MISMATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// StaticizeError represents a structured error with code and details
type StaticizeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StaticizeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StaticizeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StaticizeError) Is(target error) bool {
	var targetErr *StaticizeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StaticizeError with the given code and message
func New(code ErrorCode, message string) *StaticizeError {
	return &StaticizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StaticizeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StaticizeError {
	return &StaticizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StaticizeError
func Wrap(err error, code ErrorCode, message string) *StaticizeError {
	if err == nil {
		return nil
	}
	return &StaticizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StaticizeError {
	if err == nil {
		return nil
	}
	return &StaticizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StaticizeError) WithDetail(key string, value interface{}) *StaticizeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *StaticizeError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StaticizeError
func GetErrorCode(err error) ErrorCode {
	var serr *StaticizeError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StaticizeError
func GetErrorDetails(err error) map[string]interface{} {
	var serr *StaticizeError
	if errors.As(err, &serr) {
		return serr.Details
	}
	return nil
}
