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

// ClientRepository implements repositories.ClientRepository against PostgreSQL.
type ClientRepository struct {
	db *database.Database
}

func NewClientRepository(database *database.Database) *ClientRepository {
	return &ClientRepository{db: database}
}

func (r *ClientRepository) Save(ctx context.Context, c *models.Client) error {
	id, err := db.New(r.db.DB()).InsertClient(ctx, db.InsertClientParams{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     database.NullString(c.Phone),
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	c.ID = id
	return nil
}

// GetByID returns ErrClientNotFound if no client has id.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	row, err := db.New(r.db.DB()).GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoicingdomain.ErrClientNotFound
		}
		return nil, fmt.Errorf("query client: %w", err)
	}
	return rowToClient(row), nil
}

func (r *ClientRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Client, int, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListClients(ctx, db.ListClientsParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("query clients: %w", err)
	}
	total, err := q.CountClients(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}
	clients := make([]*models.Client, len(rows))
	for i, row := range rows {
		clients[i] = rowToClient(row)
	}
	return clients, int(total), nil
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	n, err := db.New(r.db.DB()).UpdateClient(ctx, db.UpdateClientParams{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     database.NullString(c.Phone),
		UpdatedBy: database.NullString(c.UpdatedBy),
		UpdatedAt: database.NullTime(c.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if n == 0 {
		return invoicingdomain.ErrClientNotFound
	}
	return nil
}

// Delete removes a client. A client with invoices is ErrClientInUse.
func (r *ClientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeleteClient(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: client %d", invoicingdomain.ErrClientInUse, id)
		}
		return false, fmt.Errorf("delete client: %w", err)
	}
	return n > 0, nil
}

func rowToClient(row db.InvoicingClient) *models.Client {
	return &models.Client{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Phone: database.StringPtr(row.Phone),
		Stamp: stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}
