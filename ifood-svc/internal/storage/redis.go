package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores DTOs as JSON under ifood:<entity>:<generation>:<id>.
// The current generation of an entity lives in ifood:<entity>:gen; bumping it
// orphans every entry written under an older generation, and those expire
// with their TTL.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Key(entity string, generation, id int64) string {
	return fmt.Sprintf("ifood:%s:%d:%d", entity, generation, id)
}

func (c *RedisCache) GenerationKey(entity string) string {
	return "ifood:" + entity + ":gen"
}

// Generation returns the entity's current generation, zero if it was never
// invalidated.
func (c *RedisCache) Generation(ctx context.Context, entity string) (int64, error) {
	gen, err := c.Client.Get(ctx, c.GenerationKey(entity)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s generation: %w", entity, err)
	}
	return gen, nil
}

func (c *RedisCache) Get(ctx context.Context, entity string, generation, id int64, dst any) (bool, error) {
	raw, err := c.Client.Get(ctx, c.Key(entity, generation, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s %d: %w", entity, id, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, entity string, generation, id int64, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key(entity, generation, id), payload, c.TTL).Err()
}

// Invalidate moves the entity to a new generation.
func (c *RedisCache) Invalidate(ctx context.Context, entity string) error {
	if err := c.Client.Incr(ctx, c.GenerationKey(entity)).Err(); err != nil {
		return fmt.Errorf("invalidate %s: %w", entity, err)
	}
	return nil
}
