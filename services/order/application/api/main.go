package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/order/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// OrderRoutes registers order endpoints, including the per-person listing,
// on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	orders := handlers.NewOrderHandler(appsvcs.New(a), a.Errors)
	r.Group(func(r chi.Router) {
		r.Get("/orders", orders.List)
		r.Post("/orders", orders.Create)
		r.Get("/orders/{id}", orders.Get)
		r.Put("/orders/{id}", orders.Update)
		r.Delete("/orders/{id}", orders.Delete)
		r.Get("/persons/{id}/orders", orders.ListByPerson)
	})
}
