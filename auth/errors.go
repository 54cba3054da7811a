package auth

import "errors"

var (
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrEmailRequired is returned when registering with an empty email.
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordRequired is returned when registering with an empty password.
	ErrPasswordRequired = errors.New("password is required")
)
