package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

// ProductRepository is the persistence interface for the Product entity.
type ProductRepository interface {
	Save(ctx context.Context, p *models.Product) error
	// GetByID returns ErrProductNotFound when no product has id.
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, opts paging.Opts) ([]*models.Product, int, error)
	Update(ctx context.Context, p *models.Product) error
	// Delete fails with ErrProductInUse while invoice details reference id.
	Delete(ctx context.Context, id int64) (bool, error)
}
