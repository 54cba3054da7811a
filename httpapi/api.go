package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/dealshop/accounts/auth"
	"github.com/dealshop/accounts/ratelimit"
)

// API exposes the account service over JSON HTTP. It owns no transport
// state; build one per process and mount Handler() on a server.
type API struct {
	auth       *auth.Service
	loginLimit *ratelimit.Limiter
	health     func(context.Context) error
	log        *slog.Logger
	cors       *cors.Cors
}

// Option configures the API.
type Option func(*API)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithLoginLimiter enables rate limiting on the login endpoint.
func WithLoginLimiter(l *ratelimit.Limiter) Option {
	return func(a *API) {
		a.loginLimit = l
	}
}

// WithHealthcheck wires a dependency probe into GET /healthz.
func WithHealthcheck(fn func(context.Context) error) Option {
	return func(a *API) {
		a.health = fn
	}
}

// WithAllowedOrigins enables CORS for browser clients on other origins.
// Credentials are allowed because the session rides in a cookie.
func WithAllowedOrigins(origins ...string) Option {
	return func(a *API) {
		a.cors = cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		})
	}
}

// New creates an API around the auth service.
func New(svc *auth.Service, opts ...Option) *API {
	a := &API{
		auth: svc,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler mounts all routes and wraps them with the middleware chain.
func (a *API) Handler() http.Handler {
	h := a.withRequestScope(a.routes())
	h = a.logRequests(h)
	h = withRequestID(h)
	if a.cors != nil {
		h = a.cors.Handler(h)
	}
	return h
}
