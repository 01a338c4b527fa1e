package errors

import "errors"

// Validation error texts are returned to clients verbatim, hence the
// sentence casing.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingName      = errors.New("Missing name")
	ErrMissingEmail     = errors.New("Missing email")
	ErrMissingPassword  = errors.New("Missing password")
	ErrInvalidEmail     = errors.New("Invalid email address")
	ErrPasswordTooShort = errors.New("Password must be at least 10 characters long")
	ErrEmailInUse       = errors.New("Email already in use")
	ErrMissingRole      = errors.New("Missing role")
	ErrUnknownRole      = errors.New("Unknown role")
)
