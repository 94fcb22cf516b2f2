package databases

//go generate: mockery --name Backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/config"
)

// ErrNotFound is returned by a Backend for a key that was never written
var ErrNotFound = errors.New("key not found")

// Backend is the raw key-value storage under the Store. Values are opaque
// JSON documents.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}

// NewBackend opens the backend selected by conf.StoreBackend
func NewBackend(ctx context.Context, conf *config.Config) (Backend, error) {
	switch conf.StoreBackend {
	case "memory":
		return NewMemoryBackend(), nil
	case "", "file":
		return NewFileBackend(conf.DataDir)
	case "sqlite":
		return NewSQLiteBackend(ctx, conf.SQLitePath)
	case "mongo":
		client, err := NewClient(conf)
		if err != nil {
			return nil, fmt.Errorf("create mongo client: %w", err)
		}
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := client.Connect(connectCtx); err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		zap.S().Infow("connected to mongo", "database", conf.DatabaseName)
		return NewMongoBackend(NewDatabase(conf, client)), nil
	case "redis":
		opts, err := redis.ParseURL(conf.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return NewRedisBackend(client), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", conf.StoreBackend)
}
