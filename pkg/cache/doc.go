// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache for bounding in-memory state.
//
//	pages := cache.NewLRUCache[string, *Page](1000)
//	pages.SetEvictCallback(func(id string, p *Page) { p.Close() })
//
//	pages.Put(id, page)
//	if p, ok := pages.Get(id); ok {
//		// p is now the most recently used entry
//	}
//	pages.Remove(id)
//
// Get, Put and Remove are O(1). The evict callback runs for every entry that
// leaves the cache (capacity eviction, Remove, Clear) after the internal lock
// is released.
package cache
