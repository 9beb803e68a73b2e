// Package ratelimiter implements token bucket rate limiting over a
// pluggable Store.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each allowed call takes tokens out; a call that would
// overdraw the bucket is denied and takes nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.Allow(ctx, clientip.FromContext(ctx))
//	if err != nil {
//		return err
//	}
//	if !res.Allowed() {
//		// come back after res.RetryAfter()
//	}
//
// MemoryStore keeps buckets in process memory and drops those untouched
// for an hour. RedisStore shares buckets between processes. All
// types are safe for concurrent use.
package ratelimiter
