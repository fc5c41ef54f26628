package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/item/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	items := handlers.NewItemHandler(appsvcs.New(a), a.Errors)
	r.Group(func(r chi.Router) {
		r.Get("/items", items.List)
		r.Post("/items", items.Create)
		r.Get("/items/{id}", items.Get)
		r.Put("/items/{id}", items.Update)
		r.Delete("/items/{id}", items.Delete)
	})
}
