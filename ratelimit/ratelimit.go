package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Store counts hits per key within a fixed window. Implementations must be
// safe for concurrent use.
type Store interface {
	// Incr increments the counter for key, starting a fresh window with the
	// given duration when none is active, and returns the post-increment
	// count.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}

// Limiter is a fixed-window counter limiter with pluggable storage.
type Limiter struct {
	store  Store
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit hits per window.
func New(store Store, cfg Config) (*Limiter, error) {
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, cfg.Limit)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %s", ErrInvalidConfig, cfg.Window)
	}
	return &Limiter{
		store:  store,
		limit:  cfg.Limit,
		window: cfg.Window,
	}, nil
}

// Allow records a hit for key and reports whether it is within the limit.
// Store failures return an error so callers decide whether to fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return count <= l.limit, nil
}

// Reset clears the counter for key, e.g. after a successful login.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
