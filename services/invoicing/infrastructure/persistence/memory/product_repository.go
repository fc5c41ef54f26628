// Package memory provides in-process invoicing repositories for tests and
// local runs without PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

type ProductRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Product
	// InUse, when set, makes Delete fail with ErrProductInUse for referenced ids.
	InUse func(id int64) bool
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[int64]models.Product)}
}

func (r *ProductRepository) Save(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = *p
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, invoicingdomain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, opts paging.Opts) ([]*models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Product, 0, len(r.byID))
	for _, p := range r.byID {
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *ProductRepository) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return invoicingdomain.ErrProductNotFound
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	if r.InUse != nil && r.InUse(id) {
		return false, fmt.Errorf("%w: product %d", invoicingdomain.ErrProductInUse, id)
	}
	delete(r.byID, id)
	return true, nil
}
