package ratelimit

import "errors"

// ErrInvalidConfig is returned for incoherent limiter configuration.
var ErrInvalidConfig = errors.New("invalid rate limit config")
