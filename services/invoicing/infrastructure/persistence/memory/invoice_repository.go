package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

type InvoiceRepository struct {
	mu           sync.RWMutex
	nextID       int64
	nextDetailID int64
	byID         map[int64]models.Invoice
	// Creates counts Create calls so tests can assert nothing was written.
	Creates int
}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{byID: make(map[int64]models.Invoice)}
}

func (r *InvoiceRepository) Create(_ context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Creates++
	var number int64
	for _, stored := range r.byID {
		number = max(number, stored.InvoiceNumber)
	}
	r.nextID++
	inv.ID = r.nextID
	inv.InvoiceNumber = number + 1
	r.assignDetails(inv)
	r.byID[inv.ID] = cloneInvoice(inv)
	return nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id int64) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, invoicingdomain.ErrInvoiceNotFound
	}
	c := cloneInvoice(&inv)
	return &c, nil
}

func (r *InvoiceRepository) List(_ context.Context, opts paging.Opts) ([]*models.Invoice, int, error) {
	return r.page(opts, func(models.Invoice) bool { return true })
}

func (r *InvoiceRepository) ListByClient(_ context.Context, clientID int64, opts paging.Opts) ([]*models.Invoice, int, error) {
	return r.page(opts, func(inv models.Invoice) bool { return inv.ClientID == clientID })
}

func (r *InvoiceRepository) Update(_ context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[inv.ID]
	if !ok {
		return invoicingdomain.ErrInvoiceNotFound
	}
	inv.InvoiceNumber = stored.InvoiceNumber
	r.assignDetails(inv)
	r.byID[inv.ID] = cloneInvoice(inv)
	return nil
}

func (r *InvoiceRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ReferencesClient reports whether any stored invoice belongs to clientID.
func (r *InvoiceRepository) ReferencesClient(clientID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.byID {
		if inv.ClientID == clientID {
			return true
		}
	}
	return false
}

// ReferencesProduct reports whether any stored detail names productID.
func (r *InvoiceRepository) ReferencesProduct(productID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.byID {
		for _, d := range inv.Details {
			if d.ProductID == productID {
				return true
			}
		}
	}
	return false
}

func (r *InvoiceRepository) page(opts paging.Opts, keep func(models.Invoice) bool) ([]*models.Invoice, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		if keep(inv) {
			c := cloneInvoice(&inv)
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	start, end := opts.Window(len(all))
	return all[start:end], len(all), nil
}

func (r *InvoiceRepository) assignDetails(inv *models.Invoice) {
	for i := range inv.Details {
		r.nextDetailID++
		inv.Details[i].ID = r.nextDetailID
		inv.Details[i].InvoiceID = inv.ID
	}
}

func cloneInvoice(inv *models.Invoice) models.Invoice {
	c := *inv
	c.Details = slices.Clone(inv.Details)
	return c
}
