package auth

import "errors"

// Errors returned by registration and login. Callers match with errors.Is
// and surface a message next to the triggering form; none are fatal.
var (
	ErrInvalidAuthorizationCode = errors.New("invalid authorization code")
	ErrEmailAlreadyRegistered   = errors.New("an agent with this email already exists")
	ErrInvalidCredentials       = errors.New("invalid email or password")
)
