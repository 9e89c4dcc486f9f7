package catalog

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw catalog responses.
type Cache interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// RedisCache keeps responses in Redis under "<prefix>:<sha1>".
type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache wraps an existing client.
func NewRedisCache(rdb *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "catalog"
	}
	return &RedisCache{rdb: rdb, prefix: prefix}
}

// DialRedis connects to addr and pings it. Callers fall back to NopCache on error.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *RedisCache) key(k string) string {
	sum := sha1.Sum([]byte(k))
	return fmt.Sprintf("%s:%x", c.prefix, sum[:])
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	bs, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return bs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.SetEx(ctx, c.key(key), value, ttl).Err()
}
