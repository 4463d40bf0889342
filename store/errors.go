package store

import "errors"

// Error kinds surfaced by the member store. Callers test with errors.Is.
var (
	// ErrValidation reports rejected input: a blank name, or an import payload
	// that is not a JSON array.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports an update aimed at an unknown member.
	ErrNotFound = errors.New("member not found")

	// ErrStorage wraps failures writing the durable slot. The store logs and
	// swallows these; they are only observable through LastSaveError.
	ErrStorage = errors.New("storage error")
)
