package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dwikikusuma/storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCache_GetHit(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	cart := domain.Cart{
		ShopperID: "shopper-1",
		Items: []domain.LineItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 3},
		},
	}
	data, _ := json.Marshal(cart)
	require.NoError(t, mr.Set(cacheKey("shopper-1"), string(data)))

	got, err := cache.Get(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
}

func TestRedisCache_GetMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_SetAndDelete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	cart := domain.Cart{ShopperID: "shopper-1", Items: []domain.LineItem{{ProductID: "p1", Quantity: 1}}}
	require.NoError(t, cache.Set(ctx, "shopper-1", cart))
	assert.True(t, mr.Exists(cacheKey("shopper-1")))

	require.NoError(t, cache.Delete(ctx, "shopper-1"))
	assert.False(t, mr.Exists(cacheKey("shopper-1")))
}

func TestCachedRepo_ReadThrough(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewCachedRepo(cartmem.NewRepo(), cache, log)

	_, err := repo.Get(ctx, "nobody")
	assert.ErrorIs(t, err, app.ErrCartNotFound)

	cart := domain.Cart{ShopperID: "shopper-1", Items: []domain.LineItem{{ProductID: "p1", Quantity: 4}}}
	_, err = repo.Upsert(ctx, cart)
	require.NoError(t, err)

	// First read fills the cache.
	got, err := repo.Get(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
	assert.True(t, mr.Exists(cacheKey("shopper-1")))

	// Mutation invalidates it.
	cart.Items[0].Quantity = 5
	_, err = repo.Upsert(ctx, cart)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cacheKey("shopper-1")))

	got, err = repo.Get(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Items[0].Quantity)
}
