package main

import (
	"github.com/dealshop/accounts/postgres"
	"github.com/dealshop/accounts/ratelimit"
	"github.com/dealshop/accounts/server"
	"github.com/dealshop/accounts/session"
	"github.com/dealshop/accounts/sessiontransport"
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"accounts"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Optional: enables the Redis-backed login limiter and CORS for the
	// storefront origin.
	RedisURL       string   `env:"REDIS_URL" envDefault:""`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:""`

	DB        postgres.Config
	Session   session.Config
	Cookie    sessiontransport.Config
	RateLimit ratelimit.Config
	Server    server.Config
}

func (c Config) isProduction() bool {
	return c.Environment == "production"
}
