// Package errors provides the error taxonomy for create-nulla.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the config field name for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidNameError creates an error for a name whose slug fails validation.
func NewInvalidNameError(slug, hint string) error {
	return &DetailError{
		Type:    "invalid project name",
		Message: fmt.Sprintf("%q is not a valid package name", slug),
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// NewAlreadyExistsError creates an error for a project directory that already exists.
// cause is the filesystem failure and stays reachable through errors.Is.
func NewAlreadyExistsError(path string, cause error) error {
	wrapped := ErrAlreadyExists
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrAlreadyExists, cause)
	}
	return &DetailError{
		Type:     "already exists",
		Message:  "the project directory already exists",
		Location: path,
		Hint:     "Choose another name or remove the existing directory.",
		Cause:    wrapped,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
