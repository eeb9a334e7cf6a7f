package visitor

import "errors"

var (
	// ErrValidation is returned when a sign-in field is empty after trimming.
	ErrValidation = errors.New("all fields must be filled in")

	// ErrNotFound is returned when no checked-in visitor matches a sign-out.
	ErrNotFound = errors.New("name not found, try again")

	// ErrStorage wraps failures writing the record store.
	ErrStorage = errors.New("storage error")

	// ErrLogging wraps failures appending to the audit log.
	ErrLogging = errors.New("audit log error")
)
