package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RemoveStale(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := NewMemoryStore(WithCleanupInterval(0), WithClock(func() time.Time { return now }))
	defer ms.Close()

	cfg := Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	_, _, err := ms.ConsumeTokens(context.Background(), "old", 1, cfg)
	require.NoError(t, err)

	now = now.Add(staleAfter)
	_, _, err = ms.ConsumeTokens(context.Background(), "fresh", 1, cfg)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	ms.removeStale()

	assert.Equal(t, 1, ms.Len())
	_, ok := ms.buckets["fresh"]
	assert.True(t, ok)
}
