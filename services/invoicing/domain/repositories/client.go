package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

// ClientRepository is the persistence interface for the Client entity.
type ClientRepository interface {
	Save(ctx context.Context, c *models.Client) error
	// GetByID returns ErrClientNotFound when no client has id.
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	List(ctx context.Context, opts paging.Opts) ([]*models.Client, int, error)
	Update(ctx context.Context, c *models.Client) error
	// Delete fails with ErrClientInUse while the client has invoices.
	Delete(ctx context.Context, id int64) (bool, error)
}
