package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/events"
	"github.com/ghuser/orderdesk/pkg/paging"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	domainevents "github.com/ghuser/orderdesk/services/item/domain/events"
	"github.com/ghuser/orderdesk/services/item/domain/models"
	"github.com/ghuser/orderdesk/services/item/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish ItemChangedEvents inside each write
// transaction; a nil bus disables publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save persists a new Item and publishes an ItemChangedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			Name:      item.Name.String(),
			Price:     item.Price,
			CreatedBy: item.CreatedBy,
			CreatedAt: item.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		item.ID = id
		return r.publishChanged(ctx, tx, item, false, item.CreatedAt)
	})
}

// GetByID retrieves an Item by id. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// List retrieves a page of items ordered by id and the total count.
func (r *ItemRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Item, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.ListItems(ctx, db.ListItemsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}

	total, err := q.CountItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, int(total), nil
}

// Update persists name, price and update stamp and publishes an ItemChangedEvent.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItem(ctx, db.UpdateItemParams{
			ID:        item.ID,
			Name:      item.Name.String(),
			Price:     item.Price,
			UpdatedBy: database.NullString(item.UpdatedBy),
			UpdatedAt: database.NullTime(item.UpdatedAt),
		})
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		occurred := time.Now().UTC()
		if item.UpdatedAt != nil {
			occurred = *item.UpdatedAt
		}
		return r.publishChanged(ctx, tx, item, false, occurred)
	})
}

// Delete removes an item by id and publishes a deletion event when a row was removed.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, id)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: item %d", itemdomain.ErrItemInUse, id)
			}
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return nil
		}
		deleted = true
		return r.publishChanged(ctx, tx, &models.Item{ID: id}, true, time.Now().UTC())
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ItemRepository) publishChanged(ctx context.Context, tx *sql.Tx, item *models.Item, deleted bool, occurred time.Time) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    domainevents.ItemChangedVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Price:      item.Price,
		Deleted:    deleted,
		OccurredAt: occurred,
	}
	msg, err := events.NewMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	if err := r.bus.PublishTx(ctx, tx, domainevents.TopicItemChanged, msg); err != nil {
		return fmt.Errorf("publish item changed: %w", err)
	}
	return nil
}

// rowToItem maps a db.ItemItem to a domain models.Item.
func rowToItem(row db.ItemItem) *models.Item {
	return &models.Item{
		ID:    row.ID,
		Name:  models.ItemName(row.Name),
		Price: row.Price,
		Stamp: audit.Stamp{
			CreatedBy: row.CreatedBy,
			CreatedAt: row.CreatedAt.UTC(),
			UpdatedBy: database.StringPtr(row.UpdatedBy),
			UpdatedAt: database.TimePtr(row.UpdatedAt),
		},
	}
}
