package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin string cache over Redis used for dashboard aggregates.
// Token verification results are never stored here.
type Cache struct {
	rdb *redis.Client
}

// NewFromURL connects from a redis:// URL and verifies the connection.
func NewFromURL(ctx context.Context, url string) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	c := &Cache{rdb: redis.NewClient(opt)}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		_ = c.rdb.Close()
		return nil, err
	}
	return c, nil
}

// NewFromClient wraps an existing client; used by tests.
func NewFromClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get returns the cached value and whether the key was present.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *Cache) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
