package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dealshop/accounts/session"
	"github.com/dealshop/accounts/user"
)

// SessionStore implements session.Store against the sessions table.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a session store over the given connection pool.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, sess session.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, sess.ID, sess.UserID, sess.ExpiresAt); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *SessionStore) GetWithUser(ctx context.Context, id string) (session.Session, user.User, error) {
	query := `
		SELECT s.id, s.user_id, s.expires_at,
		       u.id, u.email, u.password_hash, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	var (
		sess session.Session
		usr  user.User
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID, &sess.UserID, &sess.ExpiresAt,
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Session{}, user.User{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, user.User{}, fmt.Errorf("get session: %w", err)
	}

	return sess, usr, nil
}

func (s *SessionStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	query := `UPDATE sessions SET expires_at = $2 WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, expiresAt)
	if err != nil {
		return fmt.Errorf("update session expiry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return session.ErrNotFound
	}
	return nil
}

// Delete removes a session row. Deleting an absent row succeeds, which makes
// invalidation idempotent per the session.Store contract.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}
