package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "homenest/internal/adapters/redis"
)

func TestLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)

	l := redisad.New(mr.Addr(), "", 0, 3, time.Minute)
	t.Cleanup(func() { _ = l.Close() })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow(ctx, "1.2.3.4") {
		t.Fatalf("4th request should be throttled")
	}

	// a distinct client key is unaffected
	if !l.Allow(ctx, "5.6.7.8") {
		t.Fatalf("distinct key should be allowed")
	}

	// window expiry resets the counter
	mr.FastForward(2 * time.Minute)
	if !l.Allow(ctx, "1.2.3.4") {
		t.Fatalf("expected allow after window reset")
	}
}

func TestLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	l := redisad.New(mr.Addr(), "", 0, 1, time.Minute)
	t.Cleanup(func() { _ = l.Close() })

	mr.Close()
	if !l.Allow(context.Background(), "1.2.3.4") {
		t.Fatalf("limiter should fail open when redis is down")
	}
}
