package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/person/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/person/application/services"
)

// PersonRoutes registers person endpoints on the provided chi router.
func PersonRoutes(r chi.Router, a *app.Application) {
	persons := handlers.NewPersonHandler(appsvcs.New(a), a.Errors)
	r.Group(func(r chi.Router) {
		r.Get("/persons", persons.List)
		r.Post("/persons", persons.Create)
		r.Get("/persons/{id}", persons.Get)
		r.Put("/persons/{id}", persons.Update)
		r.Delete("/persons/{id}", persons.Delete)
	})
}

// SessionRoutes registers sign-in and sign-out. They stay outside any
// write guard so an anonymous caller can obtain a session. No-op when the
// process has no session store.
func SessionRoutes(r chi.Router, a *app.Application) {
	if a.SessionStore == nil {
		return
	}
	session := handlers.NewSessionHandler(appsvcs.New(a), a.SessionStore, a.Errors)
	r.Post("/session", session.Create)
	r.Delete("/session", session.Delete)
}
