package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every write also publishes an ItemChangedEvent in the same transaction.
type ItemRepository interface {
	// Save inserts item and assigns item.ID.
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns ErrItemNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// List returns one page ordered by id ascending plus the total count.
	List(ctx context.Context, opts paging.Opts) ([]*models.Item, int, error)

	// Update persists name, price and update stamp. Returns ErrItemNotFound
	// when no row matches.
	Update(ctx context.Context, item *models.Item) error

	// Delete reports whether a row was removed. Returns ErrItemInUse when
	// order lines still reference the item.
	Delete(ctx context.Context, id int64) (bool, error)
}
