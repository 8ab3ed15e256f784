package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache on Redis. A
// short-lived lock key guards the in-flight window between first
// request and stored response; the response itself is stored with the
// retention TTL and the lock released in a single pipeline.
type IdempotencyCache struct {
	client *goredis.Client
}

// NewIdempotencyCache creates a Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the cached response bytes for a key, nil on miss.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("idempotency get: %w", err)
	}
	return data, nil
}

// AcquireLock marks the key in-flight. Returns false when another
// request already holds the lock.
func (c *IdempotencyCache) AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, lockKey, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency lock: %w", err)
	}
	return ok, nil
}

// StoreAndUnlock persists the response and releases the lock in one
// multi-op, so a concurrent waiter observes either the lock or the
// stored response, never a gap between them.
func (c *IdempotencyCache) StoreAndUnlock(ctx context.Context, key string, value []byte, ttl time.Duration, lockKey string) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, value, ttl)
	pipe.Del(ctx, lockKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("idempotency store: %w", err)
	}
	return nil
}

// Unlock releases the lock without storing a response, used when the
// handler fails with a server error so a retry can run fresh.
func (c *IdempotencyCache) Unlock(ctx context.Context, lockKey string) error {
	if err := c.client.Del(ctx, lockKey).Err(); err != nil {
		return fmt.Errorf("idempotency unlock: %w", err)
	}
	return nil
}
