package sessiontransport

import (
	"errors"
	"net/http"
	"time"
)

// Cookie binds a raw session token to a single HTTP cookie. It is purely a
// carrier: attributes are fixed (http-only, SameSite=Lax, path=/) except the
// Secure flag, which follows the production setting.
type Cookie struct {
	name   string
	secure bool
}

// New creates a cookie transport with the given options.
func New(opts ...Option) *Cookie {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromConfig(*cfg)
}

// NewFromConfig creates a cookie transport from configuration.
func NewFromConfig(cfg Config) *Cookie {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	return &Cookie{
		name:   name,
		secure: cfg.Secure,
	}
}

// Name returns the cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// Set writes the session cookie carrying the raw token, expiring with the
// session itself.
func (c *Cookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

// Clear overwrites the session cookie with an empty value and an immediate
// max-age, causing client-side deletion. Safe to call when no cookie is set.
func (c *Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

// Read extracts the raw token from the request. Returns ErrNoToken when the
// cookie is absent or empty.
func (c *Cookie) Read(r *http.Request) (string, error) {
	ck, err := r.Cookie(c.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoToken
		}
		return "", err
	}
	if ck.Value == "" {
		return "", ErrNoToken
	}
	return ck.Value, nil
}
