package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dealshop/accounts/session"
	"github.com/dealshop/accounts/sessiontransport"
	"github.com/dealshop/accounts/user"
)

// Service orchestrates registration, login, and logout: hashing credentials,
// driving the session manager, and handing tokens to the cookie transport.
type Service struct {
	users    user.Repository
	sessions *session.Manager
	cookies  *sessiontransport.Cookie
	hasher   PasswordHasher
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithPasswordHasher replaces the default digest hasher.
func WithPasswordHasher(h PasswordHasher) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// NewService creates the auth service.
func NewService(users user.Repository, sessions *session.Manager, cookies *sessiontransport.Cookie, opts ...ServiceOption) *Service {
	s := &Service{
		users:    users,
		sessions: sessions,
		cookies:  cookies,
		hasher:   DigestHasher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register hashes the password and creates the user. It does not create a
// session or set a cookie; the caller logs in separately. A taken email
// surfaces as user.ErrAlreadyExists; other store failures propagate wrapped.
func (s *Service) Register(ctx context.Context, email, password string) (user.User, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return user.User{}, ErrEmailRequired
	}
	if password == "" {
		return user.User{}, ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return user.User{}, err
	}

	return created.Sanitized(), nil
}

// Login verifies the credentials, issues a fresh session, and sets the
// session cookie on w. Returns user.ErrNotFound for an unknown email and
// ErrInvalidPassword on a mismatch.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, email, password string) (user.User, error) {
	usr, err := s.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return user.User{}, err
	}

	if !s.hasher.Verify(password, usr.PasswordHash) {
		return user.User{}, ErrInvalidPassword
	}

	token, err := session.GenerateToken()
	if err != nil {
		return user.User{}, err
	}

	sess, err := s.sessions.Create(ctx, token, usr.ID)
	if err != nil {
		return user.User{}, err
	}

	s.cookies.Set(w, token, sess.ExpiresAt)

	return usr.Sanitized(), nil
}

// Logout invalidates the current session when one exists and always clears
// the cookie, so the client never retains a stale value.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	sess, _, err := s.CurrentSession(ctx, r)

	var invalidateErr error
	if err == nil {
		invalidateErr = s.sessions.Invalidate(ctx, sess.ID)
	}

	s.cookies.Clear(w)

	return invalidateErr
}

// CurrentSession resolves the session carried by the request cookie. The
// result is memoized in the request scope installed by WithRequestScope, so
// collaborators sharing one request hit the store at most once. An absent
// cookie yields sessiontransport.ErrNoToken; an unknown or expired token
// yields session.ErrNotFound or session.ErrExpired. Use IsNotAuthenticated
// to treat the three uniformly.
func (s *Service) CurrentSession(ctx context.Context, r *http.Request) (session.Session, user.User, error) {
	if scope, ok := scopeFromContext(ctx); ok {
		return scope.resolve(func() (session.Session, user.User, error) {
			return s.currentSession(ctx, r)
		})
	}
	return s.currentSession(ctx, r)
}

func (s *Service) currentSession(ctx context.Context, r *http.Request) (session.Session, user.User, error) {
	token, err := s.cookies.Read(r)
	if err != nil {
		return session.Session{}, user.User{}, err
	}
	return s.sessions.Validate(ctx, token)
}

// IsNotAuthenticated reports whether err means "no authenticated session"
// rather than an operational failure.
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, sessiontransport.ErrNoToken) ||
		errors.Is(err, session.ErrNotFound) ||
		errors.Is(err, session.ErrExpired)
}
