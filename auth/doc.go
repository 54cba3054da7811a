// Package auth orchestrates the storefront's credential flows: registration,
// login, logout, and current-session resolution.
//
// Registration hashes the password and inserts the user; it deliberately
// does not log the user in — the caller issues a separate login, which
// verifies the credentials, creates a session through the session manager,
// and binds the raw token to the response cookie. Logout invalidates the
// current session when one exists and always clears the cookie.
//
// Current-session lookups are memoized per request: middleware installs a
// request scope with WithRequestScope, and every CurrentSession call within
// that request resolves against the store at most once. The scope is an
// explicit context object created and discarded with the request, not a
// process-wide cache.
//
// Failures split into three kinds: not-authenticated (absent cookie, unknown
// or expired token — test with IsNotAuthenticated), credential mismatch
// (user.ErrNotFound, ErrInvalidPassword), and store failures, which
// propagate wrapped. All are returned as values; nothing is fatal to the
// process.
package auth
