package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/paging"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
)

// OrderInput is a create or full-replace request: the ordering person and
// the requested lines.
type OrderInput struct {
	PersonID int64
	Lines    []models.Line
}

// OrderService runs the order transaction: validate, resolve references,
// snapshot prices, total, and hand the priced order to the repository.
type OrderService struct {
	repo repositories.OrderRepository
	refs repositories.References
	now  func() time.Time
}

func NewOrderService(repo repositories.OrderRepository, refs repositories.References) *OrderService {
	return &OrderService{repo: repo, refs: refs, now: time.Now}
}

// Create validates in, snapshots every item's current price and persists
// the order with its details. The repository assigns the order number.
// A missing person or item fails with ErrMissingReference before anything
// is written.
func (s *OrderService) Create(ctx context.Context, actor string, in OrderInput) (*models.Order, error) {
	stamp := audit.New(actor, s.now())
	details, total, err := s.price(ctx, in, stamp)
	if err != nil {
		return nil, err
	}

	o := &models.Order{PersonID: in.PersonID, Total: total, Details: details, Stamp: stamp}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

// GetByID returns the order with its details, or nil when none is stored
// under id.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", orderdomain.ErrInvalidOrder)
	}
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, orderdomain.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List returns one page of orders ordered by id.
func (s *OrderService) List(ctx context.Context, opts paging.Opts) ([]*models.Order, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	orders, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

// ListByPerson returns one page of a person's orders. An unknown person is
// ErrPersonNotFound rather than an empty page.
func (s *OrderService) ListByPerson(ctx context.Context, personID int64, opts paging.Opts) ([]*models.Order, int, error) {
	if personID <= 0 {
		return nil, 0, fmt.Errorf("%w: person id must be positive", persondomain.ErrInvalidPerson)
	}
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	ok, err := s.refs.PersonExists(ctx, personID)
	if err != nil {
		return nil, 0, fmt.Errorf("check person: %w", err)
	}
	if !ok {
		return nil, 0, fmt.Errorf("%w: person %d", persondomain.ErrPersonNotFound, personID)
	}
	orders, total, err := s.repo.ListByPerson(ctx, personID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list person orders: %w", err)
	}
	return orders, total, nil
}

// Update replaces the order's person and its whole detail list, re-pricing
// every line at the items' current prices. Lines absent from in are
// removed. Returns ErrOrderNotFound if no order has id.
func (s *OrderService) Update(ctx context.Context, id int64, actor string, in OrderInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", orderdomain.ErrInvalidOrder)
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	now := s.now()
	o.Touch(actor, now)
	// Replaced lines are new rows; they carry the update time as creation time.
	details, total, err := s.price(ctx, in, audit.New(actor, now))
	if err != nil {
		return err
	}
	o.PersonID = in.PersonID
	o.Details = details
	o.Total = total

	if err := s.repo.Update(ctx, o); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete removes an order and its details and reports whether it existed.
func (s *OrderService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", orderdomain.ErrInvalidOrder)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return deleted, nil
}

// price validates in, checks that the person and every item exist and
// returns the priced details and grand total.
func (s *OrderService) price(ctx context.Context, in OrderInput, stamp audit.Stamp) ([]models.OrderDetail, decimal.Decimal, error) {
	if err := domainsvcs.ValidateOrder(in.PersonID, in.Lines); err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}

	ok, err := s.refs.PersonExists(ctx, in.PersonID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("check person: %w", err)
	}
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("%w: %w: person %d does not exist",
			orderdomain.ErrMissingReference, persondomain.ErrPersonNotFound, in.PersonID)
	}

	prices := make(map[int64]decimal.Decimal, len(in.Lines))
	for _, l := range in.Lines {
		if _, seen := prices[l.ItemID]; seen {
			continue
		}
		price, ok, err := s.refs.ItemPrice(ctx, l.ItemID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("price item %d: %w", l.ItemID, err)
		}
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: %w: item %d does not exist",
				orderdomain.ErrMissingReference, itemdomain.ErrItemNotFound, l.ItemID)
		}
		prices[l.ItemID] = price
	}

	details, total, err := domainsvcs.PriceLines(in.Lines, prices, stamp)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}
	return details, total, nil
}
