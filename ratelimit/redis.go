package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces limiter keys in a shared Redis.
const keyPrefix = "ratelimit:"

// RedisStore implements Store on Redis so counters are shared across
// service replicas.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed fixed-window store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	k := keyPrefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	// First hit opens the window.
	if count == 1 {
		if err := s.client.PExpire(ctx, k, ttl).Err(); err != nil {
			return 0, fmt.Errorf("redis pexpire: %w", err)
		}
	}
	return count, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
