package session

import "errors"

var (
	// ErrNotFound is returned when no session matches the presented token.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned when a presented session has expired. The row
	// is deleted before this is returned, so a retry yields ErrNotFound.
	ErrExpired = errors.New("session has expired")
	// ErrTokenGeneration is returned when the secure random source fails.
	ErrTokenGeneration = errors.New("failed to generate session token")
	// ErrSaveSession is returned when a store write fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrDeleteSession is returned when a store delete fails.
	ErrDeleteSession = errors.New("failed to delete session")
	// ErrInvalidConfig is returned for incoherent lifecycle configuration.
	ErrInvalidConfig = errors.New("invalid session config")
)
