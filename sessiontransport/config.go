package sessiontransport

// DefaultName is the cookie name used when none is configured.
const DefaultName = "session"

// Config holds cookie transport configuration.
type Config struct {
	// Name of the session cookie.
	Name string `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	// Secure restricts the cookie to HTTPS. Enable in production.
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

func defaultConfig() *Config {
	return &Config{
		Name: DefaultName,
	}
}

// Option is a functional option for configuring the cookie transport.
type Option func(*Config)

// WithName sets the session cookie name.
func WithName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Name = name
		}
	}
}

// WithSecure sets the Secure cookie attribute.
func WithSecure(secure bool) Option {
	return func(c *Config) {
		c.Secure = secure
	}
}
