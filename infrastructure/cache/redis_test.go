package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/config"
)

type cachedSummary struct {
	AccountID string `json:"account_id"`
	Total     int    `json:"total"`
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &RedisCache{client: client}
}

func TestNew(t *testing.T) {
	t.Run("sem url usa noop", func(t *testing.T) {
		c, err := New(context.Background(), config.Cache{})

		require.NoError(t, err)
		assert.IsType(t, Noop{}, c)
	})

	t.Run("com url conecta no redis", func(t *testing.T) {
		mr := miniredis.RunT(t)

		c, err := New(context.Background(), config.Cache{RedisURL: "redis://" + mr.Addr()})

		require.NoError(t, err)
		assert.IsType(t, &RedisCache{}, c)
		assert.NoError(t, c.Close())
	})

	t.Run("url inválida", func(t *testing.T) {
		_, err := New(context.Background(), config.Cache{RedisURL: "invalid://url::"})

		assert.Error(t, err)
	})
}

func TestRedisCache_SetAndGet(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()

	key := Key("dashboard", "acc-1", "2024-06-10")
	assert.Equal(t, "dashboard:acc-1:2024-06-10", key)

	require.NoError(t, c.Set(ctx, key, cachedSummary{AccountID: "acc-1", Total: 3}, time.Minute))

	var got cachedSummary
	found, err := c.Get(ctx, key, &got)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got.Total)

	mr.FastForward(2 * time.Minute)

	found, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_SetRejectsInvalidTTL(t *testing.T) {
	_, c := setupMiniRedis(t)

	err := c.Set(context.Background(), "k", "v", 0)

	assert.Error(t, err)
}

func TestRedisCache_InvalidateAccount(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, Key("dashboard", "acc-1", "2024-06-10"), 1, time.Minute))
	require.NoError(t, c.Set(ctx, Key("campaigns", "acc-1", "2024-06-10", "all"), 2, time.Minute))
	require.NoError(t, c.Set(ctx, Key("dashboard", "acc-2", "2024-06-10"), 3, time.Minute))

	require.NoError(t, c.InvalidateAccount(ctx, "acc-1"))

	assert.False(t, mr.Exists("dashboard:acc-1:2024-06-10"))
	assert.False(t, mr.Exists("campaigns:acc-1:2024-06-10:all"))
	assert.True(t, mr.Exists("dashboard:acc-2:2024-06-10"))

	assert.NoError(t, c.InvalidateAccount(ctx, "acc-sem-chaves"))
}
