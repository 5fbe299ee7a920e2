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
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Bundle errors
	ErrBundleNotFound    ErrorCode = "BUNDLE_NOT_FOUND"
	ErrTransformNotFound ErrorCode = "TRANSFORM_NOT_FOUND"
	ErrStale             ErrorCode = "STALE"

	// FileSystem errors
	ErrSourceRead  ErrorCode = "SOURCE_READ"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// BundleError represents a structured error with code and details
type BundleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BundleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BundleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BundleError) Is(target error) bool {
	var targetErr *BundleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BundleError with the given code and message
func New(code ErrorCode, message string) *BundleError {
	return &BundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BundleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BundleError {
	return &BundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BundleError.
// A nil err yields a nil *BundleError; do not assign the result to an
// error variable without checking err first.
func Wrap(err error, code ErrorCode, message string) *BundleError {
	if err == nil {
		return nil
	}
	return &BundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BundleError {
	if err == nil {
		return nil
	}
	return &BundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BundleError) WithDetail(key string, value interface{}) *BundleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BundleError) WithDetails(details map[string]interface{}) *BundleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bundleErr *BundleError
	if errors.As(err, &bundleErr) {
		return bundleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BundleError
func GetErrorCode(err error) ErrorCode {
	var bundleErr *BundleError
	if errors.As(err, &bundleErr) {
		return bundleErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BundleError
func GetErrorDetails(err error) map[string]interface{} {
	var bundleErr *BundleError
	if errors.As(err, &bundleErr) {
		return bundleErr.Details
	}
	return nil
}
