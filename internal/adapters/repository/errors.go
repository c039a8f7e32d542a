package repository

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested team.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRecord is returned when a record is missing required fields.
	ErrInvalidRecord = errors.New("invalid record")
)
