package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealshop/accounts/ratelimit"
)

func newLimiter(t *testing.T, limit int64, window time.Duration) (*ratelimit.Limiter, *ratelimit.MemoryStore) {
	t.Helper()
	store := ratelimit.NewMemoryStore()
	l, err := ratelimit.New(store, ratelimit.Config{Limit: limit, Window: window})
	require.NoError(t, err)
	return l, store
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()

	_, err := ratelimit.New(store, ratelimit.Config{Limit: 0, Window: time.Minute})
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)

	_, err = ratelimit.New(store, ratelimit.Config{Limit: 5, Window: 0})
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		t.Parallel()

		l, _ := newLimiter(t, 3, time.Minute)
		ctx := context.Background()

		for i := range 3 {
			ok, err := l.Allow(ctx, "a@x.com")
			require.NoError(t, err)
			assert.True(t, ok, "hit %d should be allowed", i+1)
		}

		ok, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		l, _ := newLimiter(t, 1, time.Minute)
		ctx := context.Background()

		ok, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = l.Allow(ctx, "b@x.com")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		t.Parallel()

		l, _ := newLimiter(t, 1, 20*time.Millisecond)
		ctx := context.Background()

		ok, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		require.False(t, ok)

		time.Sleep(30 * time.Millisecond)

		ok, err = l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		t.Parallel()

		l, _ := newLimiter(t, 1, time.Minute)
		ctx := context.Background()

		_, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)

		require.NoError(t, l.Reset(ctx, "a@x.com"))

		ok, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l, _ := newLimiter(t, 50, time.Minute)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(ctx, "shared")
			require.NoError(t, err)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMemoryStore_PurgeExpired(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Incr(ctx, "stale", 10*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Incr(ctx, "fresh", time.Minute)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 1, store.PurgeExpired())
	assert.Zero(t, store.PurgeExpired())
}
