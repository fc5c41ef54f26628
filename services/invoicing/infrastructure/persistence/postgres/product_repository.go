package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
	"github.com/ghuser/orderdesk/services/invoicing/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(database *database.Database) *ProductRepository {
	return &ProductRepository{db: database}
}

func (r *ProductRepository) Save(ctx context.Context, p *models.Product) error {
	id, err := db.New(r.db.DB()).InsertProduct(ctx, db.InsertProductParams{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID returns ErrProductNotFound if no product has id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoicingdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

func (r *ProductRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Product, int, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListProducts(ctx, db.ListProductsParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	total, err := q.CountProducts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = rowToProduct(row)
	}
	return products, int(total), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	n, err := db.New(r.db.DB()).UpdateProduct(ctx, db.UpdateProductParams{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		UpdatedBy:   database.NullString(p.UpdatedBy),
		UpdatedAt:   database.NullTime(p.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return invoicingdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product. A product still named by an invoice detail is
// ErrProductInUse.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeleteProduct(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: product %d", invoicingdomain.ErrProductInUse, id)
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

func rowToProduct(row db.InvoicingProduct) *models.Product {
	return &models.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stamp:       stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}
