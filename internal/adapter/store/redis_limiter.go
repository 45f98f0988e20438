package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const usageKeyTTL = 48 * time.Hour

// RedisLimiter caps the completion tokens a client may use per UTC day.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		now:    time.Now,
	}
}

func (r *RedisLimiter) CheckLimit(ctx context.Context, clientID string) (bool, error) {
	val, err := r.client.Get(ctx, r.key(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read usage: %w", err)
	}
	usage, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("parse usage %q: %w", val, err)
	}
	return usage < r.limit, nil
}

func (r *RedisLimiter) Increment(ctx context.Context, clientID string, tokens int) error {
	key := r.key(clientID)
	pipe := r.client.TxPipeline()
	pipe.IncrBy(ctx, key, int64(tokens))
	pipe.Expire(ctx, key, usageKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}
	return nil
}

func (r *RedisLimiter) key(clientID string) string {
	return "usage:" + clientID + ":" + r.now().UTC().Format(time.DateOnly)
}
