package httpserver

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"homenest/internal/adapters/observability"
	"homenest/internal/domain"
)

// RateLimit rejects requests once a client exceeds its window allowance.
func RateLimit(l domain.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(r.Context(), remoteIP(r)) {
				writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LocalLimiter is the in-process fallback used when Redis is not
// configured: one token bucket per client key. Buckets are never evicted;
// acceptable for a single-process deployment.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	r       rate.Limit
	b       int
}

func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	return &LocalLimiter{buckets: map[string]*rate.Limiter{}, r: rate.Limit(rps), b: burst}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	lim, ok := l.buckets[key]
	if !ok {
		lim = rate.NewLimiter(l.r, l.b)
		l.buckets[key] = lim
	}
	l.mu.Unlock()

	if !lim.Allow() {
		observability.ObserveThrottle()
		return false
	}
	return true
}
