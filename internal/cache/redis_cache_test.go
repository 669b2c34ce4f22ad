package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ItemKeyPrefix, "abc")
	value := cachedItem{Name: "Lamp", Price: 2599}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		var got cachedItem
		found, err := redisCache.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got cachedItem
		found, err := redisCache.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})

	t.Run("Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("redis connection error")
		mock.ExpectGet(key).SetErr(redisErr)

		var got cachedItem
		found, err := redisCache.Get(ctx, key, &got)

		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
	})

	t.Run("Corrupt payload", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"name": 1}`)

		var got cachedItem
		found, err := redisCache.Get(ctx, key, &got)

		assert.False(t, found)
		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.ItemFirstPageKey("books")
	value := []cachedItem{{Name: "Go", Price: 3999}}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unmarshallable value", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Multiple keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel("item:1", "items:first:").SetVal(2)

		require.NoError(t, redisCache.Delete(ctx, "item:1", "items:first:"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("redis DEL failed")
		mock.ExpectDel("item:1").SetErr(redisErr)

		assert.ErrorIs(t, redisCache.Delete(ctx, "item:1"), redisErr)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "item:abc", cache.Key(cache.ItemKeyPrefix, "abc"))
	assert.Equal(t, "items:first:books", cache.ItemFirstPageKey("books"))
	assert.Equal(t, "items:first:", cache.ItemFirstPageKey(""))
}
