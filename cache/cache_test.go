package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmpl/league-api/cache"
	"github.com/mmpl/league-api/config"
)

// An unreachable Redis must degrade to always-miss: callers fall through to
// the live data source instead of failing.
func TestUnreachableRedisDegradesToMiss(t *testing.T) {
	c := cache.NewRedisCache(&config.RedisConfig{Addr: "127.0.0.1:1"})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	value, ok := c.Get(ctx, "some-key")
	assert.False(t, ok)
	assert.Nil(t, value)

	// Set must swallow the failure too.
	c.Set(ctx, "some-key", []byte("value"), time.Minute)

	value, ok = c.Get(ctx, "some-key")
	assert.False(t, ok)
	assert.Nil(t, value)
}
