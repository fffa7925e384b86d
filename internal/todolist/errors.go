package todolist

import "errors"

var (
	// ErrNetwork covers transport failures and unexpected store responses.
	ErrNetwork = errors.New("store request failed")
	// ErrNotFound means the store has no list with the requested id.
	ErrNotFound = errors.New("list not found")
	// ErrValidation is raised by callers for blank required fields.
	ErrValidation = errors.New("invalid input")
)
