package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
	"github.com/ghuser/orderdesk/services/invoicing/infrastructure/persistence/postgres/db"
)

const (
	// invoiceNumberLockKey is distinct from the order numbering key so the
	// two sequences never wait on each other.
	invoiceNumberLockKey int64 = 0x696e766f696365 // "invoice"

	invoiceNumberConstraint = "invoices_invoice_number_key"
)

// readSnapshot makes a header read and its detail read see the same data.
var readSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// InvoiceRepository implements repositories.InvoiceRepository against PostgreSQL.
type InvoiceRepository struct {
	db     *database.Database
	policy database.RetryPolicy
}

func NewInvoiceRepository(database *database.Database, policy database.RetryPolicy) *InvoiceRepository {
	return &InvoiceRepository{db: database, policy: policy}
}

// Create numbers and inserts inv with its details in one transaction.
// Numbering is MAX+1 under a transaction-scoped advisory lock, backed by the
// unique constraint; a conflict replays the transaction.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	return database.RetryTx(ctx, r.policy.MaxRetries, isNumberConflict, r.policy.OnRetry, func(ctx context.Context) error {
		return r.db.WithTx(ctx, func(tx *sql.Tx) error {
			q := db.New(tx)

			if err := q.LockInvoiceNumbering(ctx, invoiceNumberLockKey); err != nil {
				return fmt.Errorf("lock invoice numbering: %w", err)
			}
			number, err := q.NextInvoiceNumber(ctx)
			if err != nil {
				return fmt.Errorf("next invoice number: %w", err)
			}

			id, err := q.InsertInvoice(ctx, db.InsertInvoiceParams{
				ClientID:      inv.ClientID,
				InvoiceNumber: number,
				Total:         inv.Total,
				CreatedBy:     inv.CreatedBy,
				CreatedAt:     inv.CreatedAt,
			})
			if err != nil {
				return classifyWrite(err, "insert invoice")
			}
			if err := insertDetails(ctx, q, id, inv.Details); err != nil {
				return err
			}

			inv.ID = id
			inv.InvoiceNumber = number
			return nil
		})
	})
}

// GetByID returns ErrInvoiceNotFound if no invoice has id.
func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	var inv *models.Invoice
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetInvoiceByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invoicingdomain.ErrInvoiceNotFound
			}
			return fmt.Errorf("query invoice: %w", err)
		}
		details, err := q.ListDetails(ctx, id)
		if err != nil {
			return fmt.Errorf("query invoice details: %w", err)
		}
		inv = rowToInvoice(row)
		for _, d := range details {
			inv.Details = append(inv.Details, rowToDetail(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Invoice, int, error) {
	var (
		invoices []*models.Invoice
		total    int64
	)
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		page := db.ListInvoicesParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)}
		rows, err := q.ListInvoices(ctx, page)
		if err != nil {
			return fmt.Errorf("query invoices: %w", err)
		}
		if total, err = q.CountInvoices(ctx); err != nil {
			return fmt.Errorf("count invoices: %w", err)
		}
		details, err := q.ListDetailsForPage(ctx, db.ListDetailsForPageParams(page))
		if err != nil {
			return fmt.Errorf("query invoice details: %w", err)
		}
		invoices = assemble(rows, details)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return invoices, int(total), nil
}

func (r *InvoiceRepository) ListByClient(ctx context.Context, clientID int64, opts paging.Opts) ([]*models.Invoice, int, error) {
	var (
		invoices []*models.Invoice
		total    int64
	)
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		page := db.ListInvoicesByClientParams{ClientID: clientID, Limit: int32(opts.Limit), Offset: int32(opts.Offset)}
		rows, err := q.ListInvoicesByClient(ctx, page)
		if err != nil {
			return fmt.Errorf("query client invoices: %w", err)
		}
		if total, err = q.CountInvoicesByClient(ctx, clientID); err != nil {
			return fmt.Errorf("count client invoices: %w", err)
		}
		details, err := q.ListDetailsForClientPage(ctx, db.ListDetailsForClientPageParams(page))
		if err != nil {
			return fmt.Errorf("query invoice details: %w", err)
		}
		invoices = assemble(rows, details)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return invoices, int(total), nil
}

// Update rewrites the header and replaces every detail row in one transaction.
func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		n, err := q.UpdateInvoice(ctx, db.UpdateInvoiceParams{
			ID:        inv.ID,
			ClientID:  inv.ClientID,
			Total:     inv.Total,
			UpdatedBy: database.NullString(inv.UpdatedBy),
			UpdatedAt: database.NullTime(inv.UpdatedAt),
		})
		if err != nil {
			return classifyWrite(err, "update invoice")
		}
		if n == 0 {
			return invoicingdomain.ErrInvoiceNotFound
		}
		if err := q.DeleteDetails(ctx, inv.ID); err != nil {
			return fmt.Errorf("delete invoice details: %w", err)
		}
		return insertDetails(ctx, q, inv.ID, inv.Details)
	})
}

// Delete removes an invoice; its details go with it through ON DELETE CASCADE.
func (r *InvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeleteInvoice(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return n > 0, nil
}

func insertDetails(ctx context.Context, q *db.Queries, invoiceID int64, details []models.Detail) error {
	for i := range details {
		d := &details[i]
		id, err := q.InsertDetail(ctx, db.InsertDetailParams{
			InvoiceID: invoiceID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     d.Price,
			Total:     d.Total,
			CreatedBy: d.CreatedBy,
			CreatedAt: d.CreatedAt,
		})
		if err != nil {
			return classifyWrite(err, fmt.Sprintf("insert invoice detail %d", i))
		}
		d.ID = id
		d.InvoiceID = invoiceID
	}
	return nil
}

func isNumberConflict(err error) bool {
	return database.IsUniqueViolation(err, invoiceNumberConstraint) || database.IsRetryable(err)
}

// classifyWrite maps a client or product deleted between the service check
// and the insert to ErrMissingReference, and values the schema refuses to
// ErrInvalidInvoice.
func classifyWrite(err error, op string) error {
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s: %w", invoicingdomain.ErrMissingReference, op, err)
	}
	if database.IsInvalidValue(err) {
		return fmt.Errorf("%w: %s: %w", invoicingdomain.ErrInvalidInvoice, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func assemble(rows []db.InvoicingInvoice, details []db.InvoicingDetail) []*models.Invoice {
	invoices := make([]*models.Invoice, len(rows))
	byID := make(map[int64]*models.Invoice, len(rows))
	for i, row := range rows {
		invoices[i] = rowToInvoice(row)
		byID[row.ID] = invoices[i]
	}
	for _, d := range details {
		if inv, ok := byID[d.InvoiceID]; ok {
			inv.Details = append(inv.Details, rowToDetail(d))
		}
	}
	return invoices
}

func rowToInvoice(row db.InvoicingInvoice) *models.Invoice {
	return &models.Invoice{
		ID:            row.ID,
		ClientID:      row.ClientID,
		InvoiceNumber: row.InvoiceNumber,
		Total:         row.Total,
		Stamp:         stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}

func rowToDetail(row db.InvoicingDetail) models.Detail {
	return models.Detail{
		ID:        row.ID,
		InvoiceID: row.InvoiceID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Price:     row.Price,
		Total:     row.Total,
		Stamp:     stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}

func stamp(createdBy string, createdAt time.Time, updatedBy sql.NullString, updatedAt sql.NullTime) audit.Stamp {
	return audit.Stamp{
		CreatedBy: createdBy,
		CreatedAt: createdAt.UTC(),
		UpdatedBy: database.StringPtr(updatedBy),
		UpdatedAt: database.TimePtr(updatedAt),
	}
}
