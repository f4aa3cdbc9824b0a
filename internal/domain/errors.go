package domain

import "errors"

// Failure taxonomy for lifecycle operations. Services wrap these with %w and
// the API layer maps them to HTTP status codes in one place.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidState = errors.New("invalid state for this action")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")

	// ErrVersionConflict is returned by the repository when a conditional
	// update loses the race against a concurrent transition.
	ErrVersionConflict = errors.New("rental was modified concurrently")
)
