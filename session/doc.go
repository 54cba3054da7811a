// Package session implements the session lifecycle of the storefront:
// opaque token issuance, digest-keyed persistence, validation with
// sliding-window renewal, and lazy expiry.
//
// # Lifecycle
//
// A session moves through three states: active (within the full validity
// window), renewable (within the trailing renewal window, by default the
// final 15 days of a 30-day lifetime), and expired (terminal). Validation
// inside the renewal window extends the expiry to a full TTL from now on
// every call. Expiry is detected only when a token is next presented; the
// row is deleted at that point and nothing sweeps abandoned sessions.
//
// # Token scheme
//
// A raw token is 20 bytes of secure randomness in lowercase unpadded base32.
// Only its hex sha256 digest is persisted, as the session primary key, so a
// read-only database compromise yields nothing presentable.
//
// # Usage
//
//	mgr, err := session.New(store,
//		session.WithTTL(30*24*time.Hour),
//		session.WithRenewWindow(15*24*time.Hour),
//	)
//
//	token, _ := session.GenerateToken()
//	sess, err := mgr.Create(ctx, token, userID)
//
//	sess, usr, err := mgr.Validate(ctx, token)
//	switch {
//	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
//		// not authenticated
//	}
//
// Persistence is pluggable through the Store interface; the postgres package
// provides the production implementation.
package session
