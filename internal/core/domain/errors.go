package domain

import "errors"

var (
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyProcessed is returned when a transition targets a record
	// that already reached a terminal status.
	ErrAlreadyProcessed = errors.New("record already processed")

	// ErrInvalidTransition is returned for an edge the lattice does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)
