// Package memory provides an in-process PersonRepository for tests and local
// runs without PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
	"github.com/ghuser/orderdesk/services/person/domain/models"
)

// PersonRepository keeps persons in a map guarded by a mutex. Returned
// persons are copies; callers cannot mutate stored state.
type PersonRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Person
	// InUse, when set, reports whether a person is still referenced and
	// makes Delete fail with ErrPersonInUse.
	InUse func(id int64) bool
}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{byID: make(map[int64]models.Person)}
}

func (r *PersonRepository) Save(_ context.Context, p *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(p.Email, 0) {
		return fmt.Errorf("%w: %s", persondomain.ErrEmailTaken, p.Email)
	}
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = *p
	return nil
}

func (r *PersonRepository) GetByID(_ context.Context, id int64) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, persondomain.ErrPersonNotFound
	}
	return &p, nil
}

func (r *PersonRepository) GetByEmail(_ context.Context, email string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.byID {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, persondomain.ErrPersonNotFound
}

func (r *PersonRepository) List(_ context.Context, opts paging.Opts) ([]*models.Person, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Person, 0, len(r.byID))
	for _, p := range r.byID {
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *PersonRepository) Update(_ context.Context, p *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return persondomain.ErrPersonNotFound
	}
	if r.emailTaken(p.Email, p.ID) {
		return fmt.Errorf("%w: %s", persondomain.ErrEmailTaken, p.Email)
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *PersonRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	if r.InUse != nil && r.InUse(id) {
		return false, fmt.Errorf("%w: person %d", persondomain.ErrPersonInUse, id)
	}
	delete(r.byID, id)
	return true, nil
}

// Exists reports whether id is stored. Lets the order context resolve
// person references without a database.
func (r *PersonRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

func (r *PersonRepository) emailTaken(email string, except int64) bool {
	for id, p := range r.byID {
		if id != except && p.Email == email {
			return true
		}
	}
	return false
}
