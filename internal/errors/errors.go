package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNoData     ErrorType = "NO_DATA"
)

// ErrNoData is the terminal pipeline condition: the source root is absent,
// empty, or every source was rejected. It ends the run gracefully; it is the
// only per-run error that propagates to the top level.
var ErrNoData = &AppError{Type: ErrTypeNoData, Message: "no usable meter data available"}

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError of the same type, so errors.Is(err, ErrNoData)
// works regardless of message or context.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Type == t.Type
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewSourceNotFoundError reports a discovered source that vanished before it
// could be read.
func NewSourceNotFoundError(source string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("source %s not found", source), cause).
		WithContext("source", source)
}

// NewSourceUnreadableError reports a source whose content could not be parsed
// as tabular data at all.
func NewSourceUnreadableError(source string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, fmt.Sprintf("source %s is unreadable", source), cause).
		WithContext("source", source)
}

// NewMissingColumnError reports a source rejected because a required column
// is absent. The whole source is skipped, never individual rows.
func NewMissingColumnError(source, column string) *AppError {
	return NewAppError(ErrTypeValidation, fmt.Sprintf("source %s is missing required column %q", source, column), nil).
		WithContext("source", source).
		WithContext("column", column)
}

// NewNoDataError creates the terminal no-data condition with a reason.
func NewNoDataError(reason string) *AppError {
	return NewAppError(ErrTypeNoData, reason, nil)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
