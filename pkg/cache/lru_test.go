package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/cache"
)

type evicted struct {
	mu   sync.Mutex
	keys []string
}

func (e *evicted) record(key string, _ int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keys = append(e.keys, key)
}

func (e *evicted) get() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.keys...)
}

func TestLRUCache_GetPut(t *testing.T) {
	c := cache.NewLRUCache[string, int](2)

	_, ok := c.Get("a")
	assert.False(t, ok)

	old, existed := c.Put("a", 1)
	assert.False(t, existed)
	assert.Zero(t, old)

	old, existed = c.Put("a", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, old)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRUCache_Eviction(t *testing.T) {
	tests := []struct {
		name    string
		touch   func(c *cache.LRUCache[string, int])
		evicted string
	}{
		{"oldest goes first", func(*cache.LRUCache[string, int]) {}, "a"},
		{"get refreshes", func(c *cache.LRUCache[string, int]) { c.Get("a") }, "b"},
		{"put refreshes", func(c *cache.LRUCache[string, int]) { c.Put("a", 10) }, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.NewLRUCache[string, int](2)
			ev := &evicted{}
			c.SetEvictCallback(ev.record)

			c.Put("a", 1)
			c.Put("b", 2)
			tt.touch(c)
			c.Put("c", 3)

			assert.Equal(t, []string{tt.evicted}, ev.get())
			assert.Equal(t, 2, c.Len())
			_, ok := c.Get(tt.evicted)
			assert.False(t, ok)
		})
	}
}

func TestLRUCache_RemoveAndClear(t *testing.T) {
	c := cache.NewLRUCache[string, int](3)
	ev := &evicted{}
	c.SetEvictCallback(ev.record)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	v, ok := c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = c.Remove("b")
	assert.False(t, ok, "remove is idempotent")

	c.Clear()
	assert.Zero(t, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c"}, ev.get(), "every departure is reported once")
}

func TestLRUCache_CallbackOutsideLock(t *testing.T) {
	c := cache.NewLRUCache[string, int](1)

	var lenInCallback int
	c.SetEvictCallback(func(string, int) {
		// Would deadlock if the callback ran under the cache lock.
		lenInCallback = c.Len()
	})

	c.Put("a", 1)
	c.Put("b", 2)
	assert.Equal(t, 1, lenInCallback)
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	assert.Panics(t, func() { cache.NewLRUCache[string, int](-1) })
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := cache.NewLRUCache[string, int](50)
	ev := &evicted{}
	c.SetEvictCallback(ev.record)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := strconv.Itoa(g*100 + i)
				c.Put(key, i)
				c.Get(key)
				if i%10 == 0 {
					c.Remove(key)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
	assert.Equal(t, 800, c.Len()+len(ev.get()), "every entry is either cached or reported")
}
