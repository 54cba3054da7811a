package session

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"time"

	"github.com/dealshop/accounts/digest"
)

// tokenBytes is the entropy of a raw session token (160 bits).
const tokenBytes = 20

// encoding is the lowercase unpadded base32 alphabet used for raw tokens.
// Cookie-safe and case-stable, so tokens survive any transport that folds case.
var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Session is the persistent session record. ID is the hex sha256 digest of
// the raw token; the token itself is never stored, so possession of the raw
// token remains the sole authentication factor.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// State describes where a session sits in its lifecycle.
type State int

const (
	// StateActive marks a session inside its validity window.
	StateActive State = iota
	// StateRenewable marks a session inside the trailing renewal window;
	// validation extends its expiry without re-authentication.
	StateRenewable
	// StateExpired is terminal. Expiry is detected lazily at validation
	// time, never by a background sweep.
	StateExpired
)

// StateAt reports the session state at the given instant for the given
// renewal window.
func (s Session) StateAt(now time.Time, renewWindow time.Duration) State {
	if !now.Before(s.ExpiresAt) {
		return StateExpired
	}
	if !now.Before(s.ExpiresAt.Add(-renewWindow)) {
		return StateRenewable
	}
	return StateActive
}

// IsExpired reports whether the session has expired.
func (s Session) IsExpired() bool {
	return !time.Now().Before(s.ExpiresAt)
}

// GenerateToken produces a new raw session token: 20 bytes from a
// cryptographically secure source, base32-encoded. This is the only secret
// ever shown to the client.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return encoding.EncodeToString(b), nil
}

// TokenID derives the session identifier from a raw token.
func TokenID(token string) string {
	return digest.Hash(token)
}
