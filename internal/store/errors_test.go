package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "base not found", err: ErrNotFound, expected: true},
		{name: "user not found", err: ErrUserNotFound, expected: true},
		{name: "task not found", err: ErrTaskNotFound, expected: true},
		{
			name:     "wrapped task not found",
			err:      fmt.Errorf("failed to update status: %w", ErrTaskNotFound),
			expected: true,
		},
		{name: "duplicate is not a miss", err: ErrEmailExists, expected: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "base duplicate", err: ErrDuplicate, expected: true},
		{name: "email exists", err: ErrEmailExists, expected: true},
		{
			name:     "wrapped email exists",
			err:      fmt.Errorf("failed to create user: %w", ErrEmailExists),
			expected: true,
		},
		{name: "not found is not a duplicate", err: ErrTaskNotFound, expected: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsDuplicateError(tc.err))
		})
	}
}
