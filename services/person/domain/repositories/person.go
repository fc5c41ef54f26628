package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/person/domain/models"
)

// PersonRepository is the persistence interface for the Person aggregate.
// The domain layer owns this interface; infrastructure implements it.
type PersonRepository interface {
	// Save inserts p and assigns p.ID. Returns ErrEmailTaken on a duplicate email.
	Save(ctx context.Context, p *models.Person) error

	// GetByID returns ErrPersonNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Person, error)

	// GetByEmail returns ErrPersonNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*models.Person, error)

	// List returns one page ordered by id ascending plus the total count.
	List(ctx context.Context, opts paging.Opts) ([]*models.Person, int, error)

	// Update persists every mutable field. Returns ErrPersonNotFound when no
	// row matches and ErrEmailTaken on a duplicate email.
	Update(ctx context.Context, p *models.Person) error

	// Delete reports whether a row was removed. Returns ErrPersonInUse when
	// orders still reference the person.
	Delete(ctx context.Context, id int64) (bool, error)
}
