package errors

import "errors"

// Validation error texts are returned to clients verbatim.
var (
	ErrOrderNotFound = errors.New("order not found")

	ErrEmptyItems   = errors.New("Items array is empty")
	ErrInvalidItems = errors.New("Missing or invalid fields in items")
)
