// Package cache provides the Redis-backed CacheProvider.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smartdine/config"
	"smartdine/internal/domain/lifecycle"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisCache implements service.CacheProvider using Redis
type redisCache struct {
	client redis.UniversalClient
}

// New creates the Redis cache. It returns nil when no Redis address is configured,
// which leaves the catalog uncached.
func New(params Params) (service.CacheProvider, error) {
	cfg := params.Config.Redis
	if cfg == nil || strings.TrimSpace(cfg.Addr) == "" {
		params.Logger.Info("Redis cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client), nil
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client redis.UniversalClient) service.CacheProvider {
	return &redisCache{client: client}
}

// Get retrieves a value from cache
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s from cache", key)
	}

	return result, nil
}

// Set stores a value in cache with expiration
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s in cache", key)
	}

	return nil
}

// Delete removes values from cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete from cache")
	}

	return nil
}
