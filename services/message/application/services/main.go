package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/message/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Message *MessageService
}

func New(a *app.Application) *Services {
	return &Services{Message: NewMessageService(postgres.NewMessageRepository(a.Db))}
}
