package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/invoicing/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/invoicing/application/services"
)

// InvoicingRoutes registers product, client and invoice endpoints on the
// provided chi router.
func InvoicingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	products := handlers.NewProductHandler(svcs, a.Errors)
	clients := handlers.NewClientHandler(svcs, a.Errors)
	invoices := handlers.NewInvoiceHandler(svcs, a.Errors)

	r.Group(func(r chi.Router) {
		r.Get("/products", products.List)
		r.Post("/products", products.Create)
		r.Get("/products/{id}", products.Get)
		r.Put("/products/{id}", products.Update)
		r.Delete("/products/{id}", products.Delete)

		r.Get("/clients", clients.List)
		r.Post("/clients", clients.Create)
		r.Get("/clients/{id}", clients.Get)
		r.Put("/clients/{id}", clients.Update)
		r.Delete("/clients/{id}", clients.Delete)
		r.Get("/clients/{id}/invoices", invoices.ListByClient)

		r.Get("/invoices", invoices.List)
		r.Post("/invoices", invoices.Create)
		r.Get("/invoices/{id}", invoices.Get)
		r.Put("/invoices/{id}", invoices.Update)
		r.Delete("/invoices/{id}", invoices.Delete)
	})
}
