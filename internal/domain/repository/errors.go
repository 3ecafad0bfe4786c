package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist, or exists but
	// belongs to another user. The two cases are not distinguished.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
