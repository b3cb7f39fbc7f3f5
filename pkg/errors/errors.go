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
	ErrUnknownField  ErrorCode = "UNKNOWN_FIELD"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rule builder errors
	ErrIncompleteDraft ErrorCode = "INCOMPLETE_DRAFT"

	// Clipboard errors
	ErrEmptyClipboardSource ErrorCode = "EMPTY_CLIPBOARD_SOURCE"
	ErrClipboardUnavailable ErrorCode = "CLIPBOARD_UNAVAILABLE"
	ErrClipboardFailed      ErrorCode = "CLIPBOARD_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// File errors
	ErrFileExists ErrorCode = "FILE_EXISTS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrEmptyFile  ErrorCode = "EMPTY_FILE"

	// Batch errors
	ErrBatchParse ErrorCode = "BATCH_PARSE"

	// Catalog errors
	ErrCatalogParse ErrorCode = "CATALOG_PARSE"
)

// PdaError represents a structured error with code and details
type PdaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PdaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PdaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PdaError) Is(target error) bool {
	var targetErr *PdaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PdaError with the given code and message
func New(code ErrorCode, message string) *PdaError {
	return &PdaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PdaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PdaError {
	return &PdaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PdaError
func Wrap(err error, code ErrorCode, message string) *PdaError {
	if err == nil {
		return nil
	}
	return &PdaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PdaError {
	if err == nil {
		return nil
	}
	return &PdaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PdaError) WithDetail(key string, value interface{}) *PdaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PdaError) WithDetails(details map[string]interface{}) *PdaError {
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
	var pdaErr *PdaError
	if errors.As(err, &pdaErr) {
		return pdaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PdaError
func GetErrorCode(err error) ErrorCode {
	var pdaErr *PdaError
	if errors.As(err, &pdaErr) {
		return pdaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PdaError
func GetErrorDetails(err error) map[string]interface{} {
	var pdaErr *PdaError
	if errors.As(err, &pdaErr) {
		return pdaErr.Details
	}
	return nil
}
