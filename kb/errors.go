package kb

import "errors"

// Common knowledge-base errors.
var (
	// ErrNotFound is returned when a slug or identifier has no record.
	ErrNotFound = errors.New("not found in knowledge base")
)
