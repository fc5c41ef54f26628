package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/orderdesk/pkg/config"
)

const pingTimeout = 2 * time.Second

// RedisClient owns the connection pool shared by the item cache and the
// session store.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient dials cfg.RedisURL and fails fast if the server does not
// answer a PING.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

func redisOptions(cfg *config.Config) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.RedisPoolSize
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	opts.MinIdleConns = min(2, opts.PoolSize)
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	// must exceed ReadTimeout so a slow command does not starve the pool
	opts.PoolTimeout = 4 * time.Second
	return opts, nil
}

// WrapClient adapts an existing redis.Client, e.g. one pointed at miniredis.
func WrapClient(c *redis.Client) *RedisClient {
	return &RedisClient{client: c}
}

// Ping checks the connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the pool. Safe on a zero RedisClient.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client exposes the underlying redis.Client.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}
