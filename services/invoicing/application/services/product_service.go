package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
	"github.com/ghuser/orderdesk/services/invoicing/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/invoicing/domain/services"
)

// ProductInput carries the mutable fields of a Product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// ProductService orchestrates Product CRUD.
type ProductService struct {
	repo repositories.ProductRepository
	now  func() time.Time
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo, now: time.Now}
}

func (s *ProductService) Create(ctx context.Context, actor string, in ProductInput) (*models.Product, error) {
	p := models.NewProduct(in.Name, in.Description, in.Price, actor, s.now())
	if err := domainsvcs.ValidateProduct(p); err != nil {
		return nil, fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidProduct, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// GetByID returns the product, or nil when none is stored under id.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidProduct)
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, invoicingdomain.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, opts paging.Opts) ([]*models.Product, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// Update replaces every mutable field. Invoices already written keep the
// price they snapshotted.
func (s *ProductService) Update(ctx context.Context, id int64, actor string, in ProductInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidProduct)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	p.Replace(in.Name, in.Description, in.Price, actor, s.now())
	if err := domainsvcs.ValidateProduct(p); err != nil {
		return fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidProduct, err)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidProduct)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return deleted, nil
}
