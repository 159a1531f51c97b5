package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field that failed validation for a request.
// It matches ErrValidationFailed under errors.Is.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a ValidationError from the rejected fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is lets callers test for the validation kind without knowing the concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields returns the rejected fields in the order they were reported.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the first field message, or the generic one.
func (e *ValidationError) Message() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	return e.fields[0].Message
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}
