package references

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

	pkgcache "github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/logger"
	itemsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	"github.com/ghuser/orderdesk/services/item/infrastructure/persistence/memory"
)

type stubPersons map[int64]bool

func (s stubPersons) Exists(_ context.Context, id int64) (bool, error) { return s[id], nil }

type stubItems struct {
	prices map[int64]decimal.Decimal
	err    error
}

func (s stubItems) CurrentPrice(_ context.Context, id int64) (decimal.Decimal, bool, error) {
	if s.err != nil {
		return decimal.Zero, false, s.err
	}
	p, ok := s.prices[id]
	return p, ok, nil
}

func TestResolver_ItemPrice(t *testing.T) {
	ctx := context.Background()
	r := New(stubPersons{1: true}, stubItems{prices: map[int64]decimal.Decimal{
		1: decimal.RequireFromString("10.00"),
	}})

	price, ok, err := r.ItemPrice(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "10.00", price.StringFixed(2))

	_, ok, err = r.ItemPrice(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_ItemPriceError(t *testing.T) {
	boom := errors.New("connection refused")
	r := New(stubPersons{}, stubItems{err: boom})

	_, ok, err := r.ItemPrice(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestResolver_ItemPriceFollowsUpdateAfterCachedRead(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	itemCache := pkgcache.NewItemCache(pkgcache.WrapClient(client), time.Hour)
	items := itemsvcs.NewItemService(memory.NewItemRepository(), itemCache, nil, logger.Discard())
	r := New(stubPersons{}, items)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		created, err := items.Create(ctx, "", itemsvcs.ItemInput{Name: "Widget", Price: decimal.RequireFromString("10.00")})
		require.NoError(t, err)
		_, err = items.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NoError(t, items.Update(ctx, created.ID, "", itemsvcs.ItemInput{Name: "Widget", Price: decimal.RequireFromString("99.00")}))
		time.Sleep(5 * time.Millisecond)

		price, ok, err := r.ItemPrice(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "99.00", price.StringFixed(2), "item %d", created.ID)
	}
}

func TestResolver_PersonExists(t *testing.T) {
	r := New(stubPersons{1: true}, stubItems{})

	ok, err := r.PersonExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.PersonExists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
