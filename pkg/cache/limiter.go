package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "ratelimit:"

// Limiter is a fixed-window counter per key.
type Limiter struct {
	client redis.Cmdable
}

func NewLimiter(client redis.Cmdable) *Limiter {
	return &Limiter{client: client}
}

// Allow counts one hit against key and reports whether it is within limit
// for the current window. The window starts at the first hit.
//
// The key is created together with its TTL before it is counted, so a failed
// call never leaves a counter that outlives the window. A refused hit also
// checks the TTL and restores it on a counter that lost it.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	k := limiterKeyPrefix + key
	if err := l.client.SetNX(ctx, k, 0, window).Err(); err != nil {
		return false, errors.Wrapf(err, "open window %s", k)
	}
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, errors.Wrapf(err, "incr %s", k)
	}
	if n <= int64(limit) {
		return true, nil
	}
	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil {
		return false, errors.Wrapf(err, "ttl %s", k)
	}
	if ttl == -1 {
		if err := l.client.Expire(ctx, k, window).Err(); err != nil {
			return false, errors.Wrapf(err, "expire %s", k)
		}
	}
	return false, nil
}
