package session

import (
	"context"
	"time"

	"github.com/dealshop/accounts/user"
)

// Store defines session persistence. The session table is externally owned;
// the manager only issues reads, writes, and deletes against it.
type Store interface {
	// Create inserts a new session row. A duplicate identifier surfaces as
	// the store's write error (not guarded against separately: identifier
	// collisions are astronomically unlikely given the token entropy).
	Create(ctx context.Context, sess Session) error

	// GetWithUser looks up a session by identifier joined with its owning
	// user. Returns ErrNotFound when no row matches.
	GetWithUser(ctx context.Context, id string) (Session, user.User, error)

	// UpdateExpiry persists a renewed expiration timestamp.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session row. Deleting an absent row is a no-op, which
	// makes invalidation idempotent.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired rows and returns the count. Nothing
	// in the service schedules it; abandoned sessions otherwise persist
	// until next presentation. Exposed for external maintenance jobs.
	DeleteExpired(ctx context.Context) (int64, error)
}
