package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, sub Subscriber[T]) (Message[T], bool) {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive(context.Background()):
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message[T]{}, false
	}
}

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NotNil(t, sub)
		assert.Equal(t, 1, b.Subscribers())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.ErrorIs(t, sub.Err(), ErrClosed)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		assert.NoError(t, sub.Err(), "live subscriptions report no error")
		cancel()

		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.ErrorIs(t, sub.Err(), context.Canceled)
		assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("delivers to every subscriber in order", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](10)
		defer b.Close()

		ctx := context.Background()
		first := b.Subscribe(ctx)
		second := b.Subscribe(ctx)

		for i := range 3 {
			require.NoError(t, b.Broadcast(ctx, Message[int]{Data: i}))
		}

		for _, sub := range []Subscriber[int]{first, second} {
			for i := range 3 {
				msg, ok := receive(t, sub)
				require.True(t, ok)
				assert.Equal(t, i, msg.Data)
			}
		}
	})

	t.Run("slow subscriber is dropped", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 2}))

		assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)

		msg, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, 1, msg.Data)
		_, ok = receive(t, sub)
		assert.False(t, ok)
		assert.ErrorIs(t, sub.Err(), ErrSlowSubscriber)
	})

	t.Run("owner close is not reported as slow", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, b.Broadcast(context.Background(), Message[int]{Data: 1}))

		assert.ErrorIs(t, sub.Err(), ErrClosed)
		assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("broadcast after close is a no-op", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		require.NoError(t, b.Close())
		assert.NoError(t, b.Broadcast(context.Background(), Message[int]{Data: 1}))
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	b := NewMemoryBroadcaster[string](4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := b.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		_ = b.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close must not wait for subscriber contexts")
	}

	_, ok := receive(t, sub)
	assert.False(t, ok)
	assert.ErrorIs(t, sub.Err(), ErrClosed)
	assert.NoError(t, b.Close(), "close is idempotent")
	assert.NoError(t, sub.Close(), "subscriber close is idempotent")
}

func TestMemoryBroadcaster_Concurrent(t *testing.T) {
	b := NewMemoryBroadcaster[int](1000)
	defer b.Close()

	ctx := context.Background()
	sub := b.Subscribe(ctx)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 10 {
				_ = b.Broadcast(ctx, Message[int]{Data: n*10 + j})
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for range 100 {
		msg, ok := receive(t, sub)
		require.True(t, ok)
		seen[msg.Data] = true
	}
	assert.Len(t, seen, 100)
}
