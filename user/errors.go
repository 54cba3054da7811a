package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when creating a user with a taken email.
	ErrAlreadyExists = errors.New("user already exists")
)
