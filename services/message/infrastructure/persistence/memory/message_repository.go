// Package memory provides an in-process MessageRepository for tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	"github.com/ghuser/orderdesk/services/message/domain/models"
)

type MessageRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{byID: make(map[int64]models.Message)}
}

func (r *MessageRepository) Save(_ context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = *m
	return nil
}

func (r *MessageRepository) GetByID(_ context.Context, id int64) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, messagedomain.ErrMessageNotFound
	}
	return &m, nil
}

func (r *MessageRepository) List(_ context.Context, opts paging.Opts) ([]*models.Message, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Message, 0, len(r.byID))
	for _, m := range r.byID {
		all = append(all, &m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *MessageRepository) Update(_ context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[m.ID]; !ok {
		return messagedomain.ErrMessageNotFound
	}
	r.byID[m.ID] = *m
	return nil
}

func (r *MessageRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
