// Package apperrors provides typed domain errors for the calculator.
package apperrors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error.
type Type string

const (
	// TypeValidation indicates an input constraint violation. Validation
	// failures are permanent for a given input and are reported to the
	// caller as user-facing messages, never as internal faults.
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates a configuration error.
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error.
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context.
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error.
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error.
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context.
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err (or any error it wraps) is of the given type.
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error for a named input field.
func Validation(field, message string) *Error {
	return New(TypeValidation, message).WithContext("field", field)
}

// Validationf creates a formatted validation error for a named input field.
func Validationf(field, format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...).WithContext("field", field)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return IsType(err, TypeValidation)
}

// Config creates a configuration error.
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error.
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
