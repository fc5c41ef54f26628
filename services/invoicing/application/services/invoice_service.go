package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
	"github.com/ghuser/orderdesk/services/invoicing/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/invoicing/domain/services"
)

// InvoiceInput is a create or full-replace request.
type InvoiceInput struct {
	ClientID int64
	Lines    []models.Line
}

// InvoiceService runs the invoice transaction the same way orders are
// placed: validate, resolve the client and products, snapshot prices,
// total, persist with the next invoice number.
type InvoiceService struct {
	repo     repositories.InvoiceRepository
	clients  repositories.ClientRepository
	products repositories.ProductRepository
	now      func() time.Time
}

func NewInvoiceService(repo repositories.InvoiceRepository, clients repositories.ClientRepository, products repositories.ProductRepository) *InvoiceService {
	return &InvoiceService{repo: repo, clients: clients, products: products, now: time.Now}
}

func (s *InvoiceService) Create(ctx context.Context, actor string, in InvoiceInput) (*models.Invoice, error) {
	stamp := audit.New(actor, s.now())
	details, total, err := s.price(ctx, in, stamp)
	if err != nil {
		return nil, err
	}
	inv := &models.Invoice{ClientID: in.ClientID, Total: total, Details: details, Stamp: stamp}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

// GetByID returns the invoice with its details, or nil when none is stored
// under id.
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidInvoice)
	}
	inv, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, invoicingdomain.ErrInvoiceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceService) List(ctx context.Context, opts paging.Opts) ([]*models.Invoice, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	invoices, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, total, nil
}

// ListByClient returns one page of a client's invoices; an unknown client
// is ErrClientNotFound.
func (s *InvoiceService) ListByClient(ctx context.Context, clientID int64, opts paging.Opts) ([]*models.Invoice, int, error) {
	if clientID <= 0 {
		return nil, 0, fmt.Errorf("%w: client id must be positive", invoicingdomain.ErrInvalidClient)
	}
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, 0, fmt.Errorf("get client: %w", err)
	}
	invoices, total, err := s.repo.ListByClient(ctx, clientID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list client invoices: %w", err)
	}
	return invoices, total, nil
}

// Update replaces the client and every line, re-pricing at the products'
// current prices.
func (s *InvoiceService) Update(ctx context.Context, id int64, actor string, in InvoiceInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidInvoice)
	}
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get invoice: %w", err)
	}

	now := s.now()
	inv.Touch(actor, now)
	details, total, err := s.price(ctx, in, audit.New(actor, now))
	if err != nil {
		return err
	}
	inv.ClientID = in.ClientID
	inv.Details = details
	inv.Total = total

	if err := s.repo.Update(ctx, inv); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidInvoice)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return deleted, nil
}

func (s *InvoiceService) price(ctx context.Context, in InvoiceInput, stamp audit.Stamp) ([]models.Detail, decimal.Decimal, error) {
	if err := domainsvcs.ValidateInvoice(in.ClientID, in.Lines); err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidInvoice, err)
	}

	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, invoicingdomain.ErrClientNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: %w: client %d does not exist",
				invoicingdomain.ErrMissingReference, err, in.ClientID)
		}
		return nil, decimal.Zero, fmt.Errorf("check client: %w", err)
	}

	prices := make(map[int64]decimal.Decimal, len(in.Lines))
	for _, l := range in.Lines {
		if _, seen := prices[l.ProductID]; seen {
			continue
		}
		p, err := s.products.GetByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, invoicingdomain.ErrProductNotFound) {
				return nil, decimal.Zero, fmt.Errorf("%w: %w: product %d does not exist",
					invoicingdomain.ErrMissingReference, err, l.ProductID)
			}
			return nil, decimal.Zero, fmt.Errorf("price product %d: %w", l.ProductID, err)
		}
		prices[l.ProductID] = p.Price
	}

	details, total, err := domainsvcs.PriceLines(in.Lines, prices, stamp)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidInvoice, err)
	}
	return details, total, nil
}
