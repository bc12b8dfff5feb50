package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mmpl/league-api/config"
)

// Cache is a best-effort byte store with expiry. A miss (or any backend
// trouble) simply sends the caller to the live data source, so implementations
// must never surface errors.
type Cache interface {
	// Get returns the cached value for key, or false if absent.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. Failures are swallowed.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// RedisCache implements Cache on a Redis backend. A Redis outage degrades to
// always-miss rather than blocking callers.
type RedisCache struct {
	client *redis.Client
	log    *logrus.Entry
}

func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		log: logrus.WithField("component", "cache"),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).WithField("key", key).Debug("cache get failed, treating as miss")
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Debug("cache set failed")
	}
}

// Ping checks if Redis is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
