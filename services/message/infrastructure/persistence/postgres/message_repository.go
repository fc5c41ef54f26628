package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/paging"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	"github.com/ghuser/orderdesk/services/message/domain/models"
	"github.com/ghuser/orderdesk/services/message/infrastructure/persistence/postgres/db"
)

// MessageRepository implements repositories.MessageRepository against PostgreSQL.
type MessageRepository struct {
	db *database.Database
}

func NewMessageRepository(database *database.Database) *MessageRepository {
	return &MessageRepository{db: database}
}

func (r *MessageRepository) Save(ctx context.Context, m *models.Message) error {
	id, err := db.New(r.db.DB()).InsertMessage(ctx, db.InsertMessageParams{
		Content:   m.Content,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	m.ID = id
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	row, err := db.New(r.db.DB()).GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messagedomain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("query message: %w", err)
	}
	return rowToMessage(row), nil
}

func (r *MessageRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Message, int, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListMessages(ctx, db.ListMessagesParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("query messages: %w", err)
	}
	total, err := q.CountMessages(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}
	messages := make([]*models.Message, len(rows))
	for i, row := range rows {
		messages[i] = rowToMessage(row)
	}
	return messages, int(total), nil
}

func (r *MessageRepository) Update(ctx context.Context, m *models.Message) error {
	n, err := db.New(r.db.DB()).UpdateMessage(ctx, db.UpdateMessageParams{
		ID:        m.ID,
		Content:   m.Content,
		UpdatedBy: database.NullString(m.UpdatedBy),
		UpdatedAt: database.NullTime(m.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if n == 0 {
		return messagedomain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeleteMessage(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return n > 0, nil
}

func rowToMessage(row db.MessageMessage) *models.Message {
	return &models.Message{
		ID:      row.ID,
		Content: row.Content,
		Stamp: audit.Stamp{
			CreatedBy: row.CreatedBy,
			CreatedAt: row.CreatedAt.UTC(),
			UpdatedBy: database.StringPtr(row.UpdatedBy),
			UpdatedAt: database.TimePtr(row.UpdatedAt),
		},
	}
}
