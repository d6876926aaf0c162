// Package ratelimit implements the booking submission-rate guard as a
// sliding log in Redis, keyed by client identity. Keeping the counter
// server-side closes the trivial bypass of a client-local counter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:submit:"

// allowScript prunes entries older than the window, then checks and
// consumes one slot in the same atomic call, so two concurrent checks
// for one client cannot both pass on the last free slot.
//
// KEYS[1] sliding-log key, ARGV: window start (ms), limit, now (ms),
// member, key TTL (ms). Returns 1 when the submission fits the budget.
var allowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", ARGV[1])
if redis.call("ZCARD", KEYS[1]) >= tonumber(ARGV[2]) then
	return 0
end
redis.call("ZADD", KEYS[1], ARGV[3], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return 1
`)

// Clock provides the current time (swapped in tests)
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Limiter sliding-log submission limiter over Redis
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	clock  Clock
}

// New creates a limiter allowing at most limit submissions per trailing window.
func New(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		clock:  realClock{},
	}
}

// Allow checks and consumes one submission slot for the client key.
// Timestamps older than the window are pruned on each check; rejected
// attempts do not consume a slot. Returns ErrLimitExceeded when the
// budget is spent, ErrStore when Redis is unreachable.
func (l *Limiter) Allow(ctx context.Context, clientKey string) error {
	key := keyPrefix + clientKey
	now := l.clock.Now()
	windowStart := now.Add(-l.window)

	allowed, err := allowScript.Run(ctx, l.client,
		[]string{key},
		windowStart.UnixMilli(),
		l.limit,
		now.UnixMilli(),
		uuid.NewString(),
		l.window.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("%w: Allow - check and record: %v", ErrStore, err)
	}

	if allowed == 0 {
		return ErrLimitExceeded
	}

	return nil
}
