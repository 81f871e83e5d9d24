package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"homenest/internal/adapters/observability"
)

// Limiter is a fixed-window request limiter on Redis INCR/EXPIRE, keyed
// by client. It fails open: when Redis is unreachable the request is
// allowed and the error logged, so a limiter outage never takes the API
// down with it.
type Limiter struct {
	c      *redis.Client
	limit  int64
	window time.Duration
}

func New(addr, pass string, db, limit int, window time.Duration) *Limiter {
	return &Limiter{
		c:      redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		limit:  int64(limit),
		window: window,
	}
}

func (l *Limiter) Allow(ctx context.Context, key string) bool {
	k := "ratelimit:" + key
	n, err := l.c.Incr(ctx, k).Result()
	if err != nil {
		log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
		return true
	}
	if n == 1 {
		if err := l.c.Expire(ctx, k, l.window).Err(); err != nil {
			log.Warn().Err(err).Msg("rate limiter expire failed")
		}
	}
	if n > l.limit {
		observability.ObserveThrottle()
		return false
	}
	return true
}

func (l *Limiter) Close() error { return l.c.Close() }
