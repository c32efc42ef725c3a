package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nullaframework/create-nulla/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "exit error carries its code",
			err:      NewExitError(errors.New("name"), ExitInvalidNameStrict),
			expected: ExitInvalidNameStrict,
		},
		{
			name:     "wrapped exit error",
			err:      fmt.Errorf("run: %w", NewExitError(errors.New("exists"), ExitAlreadyExistsStrict)),
			expected: ExitAlreadyExistsStrict,
		},
		{
			name:     "exit error with success code",
			err:      &ExitError{Err: oerrors.ErrInvalidName, Code: ExitSuccess, Printed: true},
			expected: ExitSuccess,
		},
		{
			name:     "plain error is a general error",
			err:      errors.New("unknown flag: --nope"),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	inner := fmt.Errorf("creating project: %w", oerrors.ErrAlreadyExists)
	err := NewExitError(inner, ExitAlreadyExistsStrict)

	assert.Equal(t, inner.Error(), err.Error())
	assert.False(t, err.Printed)
	require.ErrorIs(t, err, oerrors.ErrAlreadyExists)
}
