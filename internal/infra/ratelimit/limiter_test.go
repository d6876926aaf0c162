package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *fakeClock) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := New(client, limit, window)
	clock := &fakeClock{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}
	limiter.clock = clock

	return limiter, clock
}

// --- Tests ---

func TestAllow_BudgetThenLimit(t *testing.T) {
	limiter, clock := newTestLimiter(t, 5, 4*time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"), "submission %d should fit the budget", i+1)
		clock.advance(time.Minute)
	}

	assert.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)
}

func TestAllow_RecoversAfterWindow(t *testing.T) {
	limiter, clock := newTestLimiter(t, 5, 4*time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}
	require.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)

	clock.advance(4*time.Hour + time.Second)

	assert.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
}

func TestAllow_WindowSlides(t *testing.T) {
	limiter, clock := newTestLimiter(t, 5, 4*time.Hour)
	ctx := context.Background()

	// Three early submissions, two late ones.
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}
	clock.advance(3 * time.Hour)
	for i := 0; i < 2; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}
	require.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)

	// An hour later the three early entries have left the trailing
	// window; the two late ones still count.
	clock.advance(time.Hour + time.Second)
	for i := 0; i < 3; i++ {
		assert.NoError(t, limiter.Allow(ctx, "203.0.113.7"), "slot %d should be freed by the sliding window", i+1)
	}
	assert.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)
}

func TestAllow_RejectedAttemptConsumesNoSlot(t *testing.T) {
	limiter, clock := newTestLimiter(t, 2, 4*time.Hour)
	ctx := context.Background()

	require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	clock.advance(time.Hour)
	require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))

	// Hammering the limit must not push the recovery point out.
	for i := 0; i < 10; i++ {
		require.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)
		clock.advance(time.Minute)
	}

	// Just past 4h after the first submission it leaves the window.
	clock.advance(2*time.Hour + 51*time.Minute)
	assert.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
}

func TestAllow_ClientKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, 4*time.Hour)
	ctx := context.Background()

	require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	require.ErrorIs(t, limiter.Allow(ctx, "203.0.113.7"), ErrLimitExceeded)

	assert.NoError(t, limiter.Allow(ctx, "198.51.100.23"))
}

func TestAllow_StoreUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := New(client, 5, 4*time.Hour)
	srv.Close()

	assert.ErrorIs(t, limiter.Allow(context.Background(), "203.0.113.7"), ErrStore)
}
