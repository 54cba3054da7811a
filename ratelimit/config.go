package ratelimit

import "time"

// Config holds limiter configuration. Defaults fit login brute-force
// protection: generous for humans, tight for scripts.
type Config struct {
	Limit  int64         `env:"LOGIN_RATELIMIT_ATTEMPTS" envDefault:"10"`
	Window time.Duration `env:"LOGIN_RATELIMIT_WINDOW" envDefault:"1m"`
}
