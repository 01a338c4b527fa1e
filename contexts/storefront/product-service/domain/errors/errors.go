package errors

import "errors"

// Validation error texts are returned to clients verbatim.
var (
	ErrProductNotFound = errors.New("product not found")

	ErrMissingProductName        = errors.New("Product name is required")
	ErrMissingProductDescription = errors.New("Product description is required")
	ErrInvalidProductPrice       = errors.New("Product price is invalid")
	ErrNewNameInvalid            = errors.New("New name is invalid")
	ErrNewPriceInvalid           = errors.New("New price is invalid")
)
