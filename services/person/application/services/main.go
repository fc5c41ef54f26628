package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/person/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Person *PersonService
}

// New wires the person services against the shared PostgreSQL pool.
func New(a *app.Application) *Services {
	return &Services{
		Person: NewPersonService(postgres.NewPersonRepository(a.Db)),
	}
}
