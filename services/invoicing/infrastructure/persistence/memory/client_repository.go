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

type ClientRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Client
	// InUse, when set, makes Delete fail with ErrClientInUse for clients with invoices.
	InUse func(id int64) bool
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{byID: make(map[int64]models.Client)}
}

func (r *ClientRepository) Save(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = *c
	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, id int64) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, invoicingdomain.ErrClientNotFound
	}
	return &c, nil
}

func (r *ClientRepository) List(_ context.Context, opts paging.Opts) ([]*models.Client, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Client, 0, len(r.byID))
	for _, c := range r.byID {
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *ClientRepository) Update(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return invoicingdomain.ErrClientNotFound
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	if r.InUse != nil && r.InUse(id) {
		return false, fmt.Errorf("%w: client %d", invoicingdomain.ErrClientInUse, id)
	}
	delete(r.byID, id)
	return true, nil
}
