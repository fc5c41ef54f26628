package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// An order and its details are always written together in one transaction.
type OrderRepository interface {
	// Create assigns the next order number and inserts the header and every
	// detail atomically. On success o.ID, o.OrderNumber and each detail's ID
	// and OrderID are set.
	Create(ctx context.Context, o *models.Order) error

	// GetByID returns the order with its details, or ErrOrderNotFound.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// List returns one page of orders, with details, ordered by id.
	List(ctx context.Context, opts paging.Opts) ([]*models.Order, int, error)

	// ListByPerson is List restricted to one person's orders.
	ListByPerson(ctx context.Context, personID int64, opts paging.Opts) ([]*models.Order, int, error)

	// Update replaces the person, total and update stamp and swaps the whole
	// detail set for o.Details. Returns ErrOrderNotFound when no row matches.
	Update(ctx context.Context, o *models.Order) error

	// Delete removes the order and its details and reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
