package services

import "errors"

var (
	// ErrNotFound is returned when an operation references an identifier
	// absent from its collection.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed or inconsistent input, such as
	// a service created against a nonexistent client.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned when a status patch would move a
	// service backward in its lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)
