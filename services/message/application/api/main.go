package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/message/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/message/application/services"
)

// MessageRoutes registers message endpoints on the provided chi router.
func MessageRoutes(r chi.Router, a *app.Application) {
	messages := handlers.NewMessageHandler(appsvcs.New(a), a.Errors)
	r.Group(func(r chi.Router) {
		r.Get("/messages", messages.List)
		r.Post("/messages", messages.Create)
		r.Get("/messages/{id}", messages.Get)
		r.Put("/messages/{id}", messages.Update)
		r.Delete("/messages/{id}", messages.Delete)
	})
}
