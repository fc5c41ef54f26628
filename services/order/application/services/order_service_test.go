package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/pkg/paging"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/memory"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
)

type fakeRefs struct {
	persons map[int64]bool
	prices  map[int64]decimal.Decimal
}

func (f *fakeRefs) PersonExists(_ context.Context, id int64) (bool, error) {
	return f.persons[id], nil
}

func (f *fakeRefs) ItemPrice(_ context.Context, id int64) (decimal.Decimal, bool, error) {
	p, ok := f.prices[id]
	return p, ok, nil
}

func newTestService() (*OrderService, *memory.OrderRepository, *fakeRefs) {
	repo := memory.NewOrderRepository()
	refs := &fakeRefs{
		persons: map[int64]bool{1: true, 2: true},
		prices: map[int64]decimal.Decimal{
			1: decimal.RequireFromString("10.00"),
			2: decimal.RequireFromString("2.50"),
		},
	}
	return NewOrderService(repo, refs), repo, refs
}

func TestOrderService_CreateTotals(t *testing.T) {
	svc, _, _ := newTestService()

	o, err := svc.Create(context.Background(), "ana@x.com", OrderInput{
		PersonID: 1,
		Lines:    []models.Line{{ItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), o.OrderNumber)
	assert.Equal(t, "20.00", o.Total.StringFixed(2))
	require.Len(t, o.Details, 1)
	assert.Equal(t, "20.00", o.Details[0].Total.StringFixed(2))
	assert.Equal(t, "ana@x.com", o.CreatedBy)
	assert.Nil(t, o.UpdatedAt)
}

func TestOrderService_PriceIsSnapshotted(t *testing.T) {
	svc, _, refs := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, "", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: 1, Quantity: 3}, {ItemID: 2, Quantity: 1}}})
	require.NoError(t, err)

	refs.prices[1] = decimal.RequireFromString("99.99")

	got, err := svc.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "32.50", got.Total.StringFixed(2))
	assert.Equal(t, "10.00", got.Details[0].Price.StringFixed(2))
}

func TestOrderService_MissingReferencesWriteNothing(t *testing.T) {
	tests := []struct {
		name   string
		in     OrderInput
		wantIs error
	}{
		{"absent item", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: 999, Quantity: 1}}}, itemdomain.ErrItemNotFound},
		{"absent person", OrderInput{PersonID: 42, Lines: []models.Line{{ItemID: 1, Quantity: 1}}}, persondomain.ErrPersonNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()

			_, err := svc.Create(context.Background(), "", tt.in)
			assert.ErrorIs(t, err, orderdomain.ErrMissingReference)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Zero(t, repo.Creates)
		})
	}
}

func TestOrderService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   OrderInput
	}{
		{"no person", OrderInput{Lines: []models.Line{{ItemID: 1, Quantity: 1}}}},
		{"no lines", OrderInput{PersonID: 1}},
		{"zero quantity", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: 1, Quantity: 0}}}},
		{"negative item", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: -1, Quantity: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()

			_, err := svc.Create(context.Background(), "", tt.in)
			assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)
			assert.Zero(t, repo.Creates)
		})
	}
}

func TestOrderService_TotalAboveColumnRangeIsInvalid(t *testing.T) {
	svc, repo, refs := newTestService()
	refs.prices[3] = money.Max

	_, err := svc.Create(context.Background(), "", OrderInput{
		PersonID: 1,
		Lines:    []models.Line{{ItemID: 3, Quantity: 2147483647}},
	})
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)
	assert.ErrorIs(t, err, money.ErrTooLarge)
	assert.Zero(t, repo.Creates)
}

func TestOrderService_UpdateReplacesLines(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, "", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: 1, Quantity: 1}, {ItemID: 2, Quantity: 4}}})
	require.NoError(t, err)

	err = svc.Update(ctx, o.ID, "bo@x.com", OrderInput{PersonID: 2, Lines: []models.Line{{ItemID: 2, Quantity: 2}}})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.PersonID)
	assert.Equal(t, o.OrderNumber, got.OrderNumber)
	require.Len(t, got.Details, 1)
	assert.Equal(t, int64(2), got.Details[0].ItemID)
	assert.Equal(t, "5.00", got.Total.StringFixed(2))
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, "bo@x.com", *got.UpdatedBy)
}

func TestOrderService_UpdateMissing(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Update(context.Background(), 42, "", OrderInput{PersonID: 1, Lines: []models.Line{{ItemID: 1, Quantity: 1}}})
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}

func TestOrderService_GetAndDeleteAbsent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	o, err := svc.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, o)

	deleted, err := svc.Delete(ctx, 42)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)
}

func TestOrderService_ListByPerson(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	for _, personID := range []int64{1, 2, 1} {
		_, err := svc.Create(ctx, "", OrderInput{PersonID: personID, Lines: []models.Line{{ItemID: 1, Quantity: 1}}})
		require.NoError(t, err)
	}

	orders, total, err := svc.ListByPerson(ctx, 1, paging.Opts{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, orders, 2)

	_, _, err = svc.ListByPerson(ctx, 77, paging.Opts{})
	assert.ErrorIs(t, err, persondomain.ErrPersonNotFound)

	all, total, err := svc.List(ctx, paging.Opts{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 2)
}
