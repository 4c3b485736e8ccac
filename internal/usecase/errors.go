package usecase

import "errors"

// Service error taxonomy. Handlers map these to status codes with
// errors.Is; anything unrecognized becomes a generic 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
)
