package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the response never reveals which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("could not create moderator")
)
