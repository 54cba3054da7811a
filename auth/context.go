package auth

import (
	"context"
	"sync"

	"github.com/dealshop/accounts/session"
	"github.com/dealshop/accounts/user"
)

// scopeContextKey is an unexported key type to avoid context key collisions.
type scopeContextKey struct{}

// requestScope memoizes one session validation for the lifetime of a single
// request. It is never shared across requests, so there is no invalidation
// hazard beyond the request's own lifetime.
type requestScope struct {
	once sync.Once
	sess session.Session
	usr  user.User
	err  error
}

func (rs *requestScope) resolve(fn func() (session.Session, user.User, error)) (session.Session, user.User, error) {
	rs.once.Do(func() {
		rs.sess, rs.usr, rs.err = fn()
	})
	return rs.sess, rs.usr, rs.err
}

// WithRequestScope returns a context carrying a fresh per-request session
// cache. Install it once per inbound request (the httpapi middleware does
// this) and discard it with the request.
func WithRequestScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, &requestScope{})
}

func scopeFromContext(ctx context.Context) (*requestScope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(*requestScope)
	return scope, ok
}
