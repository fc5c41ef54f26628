// Package memory provides an in-process OrderRepository for tests and local
// runs without PostgreSQL. Numbering is max+1 under the repository mutex.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

type OrderRepository struct {
	mu           sync.RWMutex
	nextID       int64
	nextDetailID int64
	byID         map[int64]models.Order
	// Creates counts Create calls so tests can assert nothing was written.
	Creates int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[int64]models.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Creates++

	var number int64
	for _, stored := range r.byID {
		number = max(number, stored.OrderNumber)
	}
	r.nextID++
	o.ID = r.nextID
	o.OrderNumber = number + 1
	r.assignDetails(o)
	r.byID[o.ID] = clone(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	c := clone(&o)
	return &c, nil
}

func (r *OrderRepository) List(_ context.Context, opts paging.Opts) ([]*models.Order, int, error) {
	return r.page(opts, func(models.Order) bool { return true })
}

func (r *OrderRepository) ListByPerson(_ context.Context, personID int64, opts paging.Opts) ([]*models.Order, int, error) {
	return r.page(opts, func(o models.Order) bool { return o.PersonID == personID })
}

func (r *OrderRepository) Update(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[o.ID]
	if !ok {
		return orderdomain.ErrOrderNotFound
	}
	o.OrderNumber = stored.OrderNumber
	r.assignDetails(o)
	r.byID[o.ID] = clone(o)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ReferencesPerson reports whether any stored order belongs to personID.
// Wire it into the person repository's InUse hook.
func (r *OrderRepository) ReferencesPerson(personID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.byID {
		if o.PersonID == personID {
			return true
		}
	}
	return false
}

// ReferencesItem reports whether any stored detail names itemID.
func (r *OrderRepository) ReferencesItem(itemID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.byID {
		for _, d := range o.Details {
			if d.ItemID == itemID {
				return true
			}
		}
	}
	return false
}

func (r *OrderRepository) page(opts paging.Opts, keep func(models.Order) bool) ([]*models.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Order, 0, len(r.byID))
	for _, o := range r.byID {
		if keep(o) {
			c := clone(&o)
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *OrderRepository) assignDetails(o *models.Order) {
	for i := range o.Details {
		r.nextDetailID++
		o.Details[i].ID = r.nextDetailID
		o.Details[i].OrderID = o.ID
	}
}

func clone(o *models.Order) models.Order {
	c := *o
	c.Details = slices.Clone(o.Details)
	return c
}
