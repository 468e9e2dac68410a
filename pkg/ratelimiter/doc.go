// Package ratelimiter implements a token bucket limiter with an in-memory
// store and an HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, clientip.GetIP)).Post("/toasts", showToast)
//
// Denied requests get 429 with Retry-After unless WithDeniedHandler is given.
package ratelimiter
