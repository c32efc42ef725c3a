package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates a project name whose slug is not a valid package name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrAlreadyExists indicates the target project directory already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates a configuration schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template file or project file was not found.
	ErrNotFound = errors.New("not found")
)
