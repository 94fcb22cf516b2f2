package databases

//go generate: mockery --name RedisHelper

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHelper is the part of *redis.Client the redis backend uses
type RedisHelper interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisBackend stores values as plain redis strings without expiry
type RedisBackend struct {
	client RedisHelper
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisBackend wraps a redis client
func NewRedisBackend(client RedisHelper) *RedisBackend {
	return &RedisBackend{client: client}
}

// Read implements Backend
func (r *RedisBackend) Read(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return b, err
}

// Write implements Backend
func (r *RedisBackend) Write(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Close implements Backend
func (r *RedisBackend) Close() error { return r.client.Close() }
