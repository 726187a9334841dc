package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowCounter counts hits per key within a rolling TTL window, backed
// by Redis INCR. Key format: ratelimit:<key>
type FixedWindowCounter struct {
	client *redis.Client
}

// NewFixedWindowCounter creates a FixedWindowCounter wrapping the given client.
func NewFixedWindowCounter(client *redis.Client) *FixedWindowCounter {
	return &FixedWindowCounter{client: client}
}

// Incr increments the counter for key and returns the new count. The window
// TTL is set on the first hit only, so the count resets window seconds after
// the first request, not the last.
func (c *FixedWindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	full := "ratelimit:" + key

	n, err := c.client.Incr(ctx, full).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := c.client.Expire(ctx, full, window).Err(); err != nil {
			return n, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n, nil
}
