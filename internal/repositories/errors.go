package repositories

import "errors"

var (
	// ErrAlreadyExists is returned when an insert violates a uniqueness
	// constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("record not found")
)
