package shared

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMissingSelection indicates a required reference was not chosen.
	ErrMissingSelection = errors.New("required selection missing")
	// ErrMissingRequiredField indicates a mandatory field was left empty.
	ErrMissingRequiredField = errors.New("required field missing")
)
