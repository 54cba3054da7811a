package session

import (
	"context"
	"errors"
	"time"

	"github.com/dealshop/accounts/user"
)

// Manager handles the session lifecycle: token issuance, validation with
// sliding-window renewal, and invalidation. Expiry is lazy: an expired
// session is deleted when next presented, never proactively.
type Manager struct {
	store       Store
	ttl         time.Duration
	renewWindow time.Duration
}

// New creates a session manager backed by the given store.
func New(store Store, opts ...Option) (*Manager, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromConfig(*cfg, store)
}

// NewFromConfig creates a session manager from configuration.
func NewFromConfig(cfg Config, store Store) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		store:       store,
		ttl:         cfg.TTL,
		renewWindow: cfg.RenewWindow,
	}, nil
}

// Create computes the digest of a raw token and inserts a session row for
// userID expiring one full TTL from now. Store write failures propagate.
func (m *Manager) Create(ctx context.Context, token string, userID int64) (Session, error) {
	sess := Session{
		ID:        TokenID(token),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return Session{}, errors.Join(ErrSaveSession, err)
	}

	return sess, nil
}

// Validate resolves a raw token to its session and owning user.
//
// An unknown digest returns ErrNotFound. An expired session is deleted from
// the store and returns ErrExpired; a second validation of the same token
// then returns ErrNotFound (idempotent expiry). A session inside the renewal
// window has its expiry extended to a full TTL from now on every validation,
// with no debounce. The returned user always has the password digest
// scrubbed.
func (m *Manager) Validate(ctx context.Context, token string) (Session, user.User, error) {
	id := TokenID(token)

	sess, usr, err := m.store.GetWithUser(ctx, id)
	if err != nil {
		return Session{}, user.User{}, err
	}

	now := time.Now()
	switch sess.StateAt(now, m.renewWindow) {
	case StateExpired:
		if err := m.store.Delete(ctx, id); err != nil {
			return Session{}, user.User{}, errors.Join(ErrDeleteSession, err)
		}
		return Session{}, user.User{}, ErrExpired
	case StateRenewable:
		sess.ExpiresAt = now.Add(m.ttl)
		if err := m.store.UpdateExpiry(ctx, id, sess.ExpiresAt); err != nil {
			return Session{}, user.User{}, errors.Join(ErrSaveSession, err)
		}
	}

	return sess, usr.Sanitized(), nil
}

// Invalidate deletes a session by identifier. Idempotent: deleting an
// already-absent session succeeds per the Store contract.
func (m *Manager) Invalidate(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions and returns the count.
// Maintenance only: validation handles expiry lazily, this just bounds
// table growth from abandoned sessions.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the full session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
