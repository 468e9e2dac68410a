// Package clientip extracts the client IP address from an HTTP request.
//
// It checks CF-Connecting-IP, X-Forwarded-For and X-Real-IP before falling
// back to RemoteAddr. The result keys per-client rate limits:
//
//	ratelimiter.Middleware(limiter, clientip.GetIP)
package clientip
