package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/invoicing/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Product *ProductService
	Client  *ClientService
	Invoice *InvoiceService
}

// New wires the invoicing services against the shared PostgreSQL pool.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db)
	clients := postgres.NewClientRepository(a.Db)
	invoices := postgres.NewInvoiceRepository(a.Db, a.NumberingPolicy("invoice"))
	return &Services{
		Product: NewProductService(products),
		Client:  NewClientService(clients),
		Invoice: NewInvoiceService(invoices, clients, products),
	}
}
