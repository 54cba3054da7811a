package user

import (
	"context"
	"strings"
	"time"
)

// User is the persistent account entity. PasswordHash holds the hex digest
// of the password and must never leave the service: call Sanitized before
// returning a user to any caller.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Sanitized returns a copy of the user with the password digest scrubbed.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Repository defines user persistence. Implementations must report a
// uniqueness violation on Create as ErrAlreadyExists and an absent row on
// GetByEmail as ErrNotFound so callers can branch without driver knowledge.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}
