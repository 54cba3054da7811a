package session

import (
	"fmt"
	"time"
)

// Config holds session lifecycle configuration.
type Config struct {
	// TTL is the full session lifetime granted at creation and on renewal.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"` // 30 days
	// RenewWindow is the trailing sub-window of TTL in which validation
	// extends the session instead of leaving it to expire.
	RenewWindow time.Duration `env:"SESSION_RENEW_WINDOW" envDefault:"360h"` // 15 days
}

// Validate checks that the configured windows are coherent.
func (c Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("%w: ttl must be positive, got %s", ErrInvalidConfig, c.TTL)
	}
	if c.RenewWindow < 0 {
		return fmt.Errorf("%w: renew window must not be negative, got %s", ErrInvalidConfig, c.RenewWindow)
	}
	if c.RenewWindow > c.TTL {
		return fmt.Errorf("%w: renew window %s exceeds ttl %s", ErrInvalidConfig, c.RenewWindow, c.TTL)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		TTL:         720 * time.Hour,
		RenewWindow: 360 * time.Hour,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL sets the full session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.TTL = ttl
	}
}

// WithRenewWindow sets the trailing renewal window.
func WithRenewWindow(window time.Duration) Option {
	return func(c *Config) {
		c.RenewWindow = window
	}
}
