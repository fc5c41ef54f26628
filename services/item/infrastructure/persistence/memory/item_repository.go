// Package memory provides an in-process ItemRepository for tests and local
// runs without PostgreSQL. It publishes no events.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

type ItemRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Item
	// InUse, when set, makes Delete fail with ErrItemInUse for referenced ids.
	InUse func(id int64) bool
	// Reads counts GetByID calls so tests can observe cache hits.
	Reads int
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{byID: make(map[int64]models.Item)}
}

func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = *item
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reads++
	item, ok := r.byID[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

func (r *ItemRepository) List(_ context.Context, opts paging.Opts) ([]*models.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Item, 0, len(r.byID))
	for _, item := range r.byID {
		all = append(all, &item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *ItemRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	r.byID[item.ID] = *item
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	if r.InUse != nil && r.InUse(id) {
		return false, fmt.Errorf("%w: item %d", itemdomain.ErrItemInUse, id)
	}
	delete(r.byID, id)
	return true, nil
}
