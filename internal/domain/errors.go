package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDateTime is returned when a task's date/time pair cannot be
	// resolved to a deadline.
	ErrInvalidDateTime = errors.New("invalid date/time")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")

	// Entity-specific validation errors

	// ErrInvalidStatus indicates a task status outside the allowed set.
	ErrInvalidStatus = fmt.Errorf("%w: invalid task status", ErrValidation)

	// ErrEmptyField indicates a required task field was empty.
	ErrEmptyField = fmt.Errorf("%w: required field is empty", ErrValidation)
)
