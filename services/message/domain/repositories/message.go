package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/services/message/domain/models"
)

// MessageRepository is the persistence interface for Message.
type MessageRepository interface {
	Save(ctx context.Context, m *models.Message) error
	// GetByID returns ErrMessageNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	List(ctx context.Context, opts paging.Opts) ([]*models.Message, int, error)
	// Update returns ErrMessageNotFound when no row matches.
	Update(ctx context.Context, m *models.Message) error
	Delete(ctx context.Context, id int64) (bool, error)
}
