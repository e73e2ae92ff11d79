// Package ratelimiter implements token bucket rate limiting over a pluggable store.
//
// MemoryStore serves a single process; RedisStore shares buckets between instances
// and updates them with one Lua script per check.
//
//	store := ratelimiter.NewRedisStore(rdb)
//	limiter, err := ratelimiter.New(store, ratelimiter.PerInterval(10, time.Minute),
//		ratelimiter.WithKeyPrefix("rememberme:ratelimit:auth:"))
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.Allow(ctx, clientIP)
//	if err == nil && !res.Allowed() {
//		// reject, retry after res.RetryAfter()
//	}
package ratelimiter
