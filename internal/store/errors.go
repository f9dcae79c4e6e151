package store

import "errors"

var (
	// ErrNotFound is returned when the requested id has no row.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a create or update collides with the
	// unique index on users.email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrOwnerMissing is returned when an item references a user id that
	// does not exist.
	ErrOwnerMissing = errors.New("owner does not exist")
)
