package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	itemsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/postgres"
	"github.com/ghuser/orderdesk/services/order/infrastructure/references"
	personsvcs "github.com/ghuser/orderdesk/services/person/application/services"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Order *OrderService
}

// New wires the order service. Persons and items are resolved through their
// own contexts' services, so item prices are read through the item cache.
func New(a *app.Application) *Services {
	refs := references.New(personsvcs.New(a).Person, itemsvcs.New(a).Item)
	repo := postgres.NewOrderRepository(a.Db, a.EventBus, a.NumberingPolicy("order"))
	return &Services{
		Order: NewOrderService(repo, refs),
	}
}
