package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/ratelimiter"
)

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Second,
	})
	require.NoError(t, err)

	_, err = limiter.Allow(context.Background(), "k")
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	assert.ErrorIs(t, limiter.Reset(context.Background(), "k"), ratelimiter.ErrStoreUnavailable)
}

// Runs against the server in REDIS_URL when it is set.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	clk := &clock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("folio-test:"+uuid.NewString()+":"),
		ratelimiter.WithRedisClock(clk.Now),
	)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)

	ctx := context.Background()
	t.Cleanup(func() { _ = limiter.Reset(ctx, "k") })

	for _, want := range []int{1, 0} {
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, want, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.WithinDuration(t, clk.Now().Add(time.Minute), res.ResetAt, 0)

	clk.Advance(time.Minute)
	res, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)
}
