package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniCache(t *testing.T, ttl time.Duration) (*ItemCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewItemCache(WrapClient(client), ttl), mr
}

func TestItemCache_SetGet(t *testing.T) {
	c, _ := newMiniCache(t, time.Hour)
	ctx := context.Background()
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	require.NoError(t, c.Set(ctx, &CachedItem{
		ID:        42,
		Name:      "Widget",
		Price:     decimal.RequireFromString("10.5"),
		CreatedBy: "anonymous",
		CreatedAt: created,
	}))

	got, err := c.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "10.50", got.Price.StringFixed(2))
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Nil(t, got.UpdatedBy)
	assert.Nil(t, got.UpdatedAt)
}

func TestItemCache_UpdateFieldsRoundTrip(t *testing.T) {
	c, _ := newMiniCache(t, time.Hour)
	ctx := context.Background()
	by := "ana@example.com"
	at := time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.Set(ctx, &CachedItem{
		ID: 1, Name: "A", Price: decimal.NewFromInt(1), CreatedBy: "x", CreatedAt: at,
		UpdatedBy: &by, UpdatedAt: &at,
	}))

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, by, *got.UpdatedBy)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(at))
}

func TestItemCache_MissReturnsRedisNil(t *testing.T) {
	c, _ := newMiniCache(t, time.Hour)
	_, err := c.Get(context.Background(), 404)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestItemCache_Expires(t *testing.T) {
	c, mr := newMiniCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, &CachedItem{ID: 7, Name: "n", Price: decimal.Zero, CreatedAt: time.Now()}))

	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, 7)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestItemCache_Delete(t *testing.T) {
	c, mr := newMiniCache(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, &CachedItem{ID: 9, Name: "n", Price: decimal.Zero, CreatedAt: time.Now()}))
	require.True(t, mr.Exists("item:9"))

	require.NoError(t, c.Delete(ctx, 9))
	assert.False(t, mr.Exists("item:9"))
}

func TestNewItemCache_DefaultTTL(t *testing.T) {
	c := NewItemCache(nil, 0)
	assert.Equal(t, DefaultItemTTL, c.ttl)
}

func TestItemCache_AddKeepsExistingEntry(t *testing.T) {
	c, _ := newMiniCache(t, time.Hour)
	ctx := context.Background()
	now := time.Now()

	added, err := c.Add(ctx, &CachedItem{ID: 3, Name: "Widget", Price: decimal.RequireFromString("10.00"), CreatedAt: now})
	require.NoError(t, err)
	assert.True(t, added)

	require.NoError(t, c.Set(ctx, &CachedItem{ID: 3, Name: "Widget", Price: decimal.RequireFromString("99.00"), CreatedAt: now}))

	added, err = c.Add(ctx, &CachedItem{ID: 3, Name: "Widget", Price: decimal.RequireFromString("10.00"), CreatedAt: now})
	require.NoError(t, err)
	assert.False(t, added)

	got, err := c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "99.00", got.Price.StringFixed(2))
}

func TestItemCache_AddSetsTTL(t *testing.T) {
	c, mr := newMiniCache(t, time.Minute)
	added, err := c.Add(context.Background(), &CachedItem{ID: 4, Name: "n", Price: decimal.Zero, CreatedAt: time.Now()})
	require.NoError(t, err)
	require.True(t, added)
	assert.Equal(t, time.Minute, mr.TTL("item:4"))
}
