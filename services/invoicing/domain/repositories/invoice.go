package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

// InvoiceRepository is the persistence interface for the Invoice aggregate.
// An invoice and its details are always written together in one transaction.
type InvoiceRepository interface {
	// Create assigns the next invoice number and inserts the header and every
	// detail atomically.
	Create(ctx context.Context, inv *models.Invoice) error

	// GetByID returns the invoice with its details, or ErrInvoiceNotFound.
	GetByID(ctx context.Context, id int64) (*models.Invoice, error)

	List(ctx context.Context, opts paging.Opts) ([]*models.Invoice, int, error)
	ListByClient(ctx context.Context, clientID int64, opts paging.Opts) ([]*models.Invoice, int, error)

	// Update rewrites the header and swaps the whole detail set.
	Update(ctx context.Context, inv *models.Invoice) error

	Delete(ctx context.Context, id int64) (bool, error)
}
