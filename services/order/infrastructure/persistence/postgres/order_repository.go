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
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	domainevents "github.com/ghuser/orderdesk/services/order/domain/events"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/postgres/db"
)

const (
	// orderNumberLockKey identifies the transaction-scoped advisory lock that
	// serializes order number assignment.
	orderNumberLockKey int64 = 0x6f7264657273 // "orders"

	orderNumberConstraint = "orders_order_number_key"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db     *database.Database
	bus    *events.EventBus
	policy database.RetryPolicy
}

// NewOrderRepository returns an OrderRepository. A nil bus disables event
// publishing; policy bounds how often a numbering conflict replays the
// creating transaction.
func NewOrderRepository(database *database.Database, bus *events.EventBus, policy database.RetryPolicy) *OrderRepository {
	return &OrderRepository{db: database, bus: bus, policy: policy}
}

// Create numbers and inserts o with all its details in one transaction.
//
// The next number is MAX(order_number)+1 read under pg_advisory_xact_lock, so
// concurrent creators queue on the lock instead of reading the same maximum.
// The UNIQUE constraint on order_number backs the lock up: a violation, a
// serialization failure or a deadlock replays the whole transaction.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	return database.RetryTx(ctx, r.policy.MaxRetries, isNumberConflict, r.policy.OnRetry, func(ctx context.Context) error {
		return r.db.WithTx(ctx, func(tx *sql.Tx) error {
			q := db.New(tx)

			if err := q.LockOrderNumbering(ctx, orderNumberLockKey); err != nil {
				return fmt.Errorf("lock order numbering: %w", err)
			}
			number, err := q.NextOrderNumber(ctx)
			if err != nil {
				return fmt.Errorf("next order number: %w", err)
			}

			id, err := q.InsertOrder(ctx, db.InsertOrderParams{
				PersonID:    o.PersonID,
				OrderNumber: number,
				Total:       o.Total,
				CreatedBy:   o.CreatedBy,
				CreatedAt:   o.CreatedAt,
			})
			if err != nil {
				return classifyWrite(err, "insert order")
			}

			if err := insertDetails(ctx, q, id, o.Details); err != nil {
				return err
			}

			o.ID = id
			o.OrderNumber = number
			return r.publish(ctx, tx, domainevents.TopicOrderPlaced, o, o.CreatedAt)
		})
	})
}

// GetByID retrieves an order and its details. Returns ErrOrderNotFound if not found.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order *models.Order
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetOrderByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return orderdomain.ErrOrderNotFound
			}
			return fmt.Errorf("query order: %w", err)
		}
		details, err := q.ListOrderDetails(ctx, id)
		if err != nil {
			return fmt.Errorf("query order details: %w", err)
		}
		order = rowToOrder(row)
		for _, d := range details {
			order.Details = append(order.Details, rowToDetail(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List retrieves a page of orders with their details and the total count.
func (r *OrderRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Order, int, error) {
	var (
		orders []*models.Order
		total  int64
	)
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		rows, err := q.ListOrders(ctx, db.ListOrdersParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)})
		if err != nil {
			return fmt.Errorf("query orders: %w", err)
		}
		if total, err = q.CountOrders(ctx); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		details, err := q.ListOrderDetailsForPage(ctx, db.ListOrderDetailsForPageParams{Limit: int32(opts.Limit), Offset: int32(opts.Offset)})
		if err != nil {
			return fmt.Errorf("query order details: %w", err)
		}
		orders = assemble(rows, details)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, int(total), nil
}

// ListByPerson retrieves a page of one person's orders with their details.
func (r *OrderRepository) ListByPerson(ctx context.Context, personID int64, opts paging.Opts) ([]*models.Order, int, error) {
	var (
		orders []*models.Order
		total  int64
	)
	err := r.db.WithTxOptions(ctx, readSnapshot, func(tx *sql.Tx) error {
		q := db.New(tx)
		rows, err := q.ListOrdersByPerson(ctx, db.ListOrdersByPersonParams{
			PersonID: personID,
			Limit:    int32(opts.Limit),
			Offset:   int32(opts.Offset),
		})
		if err != nil {
			return fmt.Errorf("query person orders: %w", err)
		}
		if total, err = q.CountOrdersByPerson(ctx, personID); err != nil {
			return fmt.Errorf("count person orders: %w", err)
		}
		details, err := q.ListOrderDetailsForPersonPage(ctx, db.ListOrderDetailsForPersonPageParams{
			PersonID: personID,
			Limit:    int32(opts.Limit),
			Offset:   int32(opts.Offset),
		})
		if err != nil {
			return fmt.Errorf("query order details: %w", err)
		}
		orders = assemble(rows, details)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, int(total), nil
}

// Update rewrites the header and replaces every detail row in one
// transaction. The order must carry an update stamp.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	if o.UpdatedAt == nil {
		return fmt.Errorf("update order %d: missing update stamp", o.ID)
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		n, err := q.UpdateOrder(ctx, db.UpdateOrderParams{
			ID:        o.ID,
			PersonID:  o.PersonID,
			Total:     o.Total,
			UpdatedBy: database.NullString(o.UpdatedBy),
			UpdatedAt: database.NullTime(o.UpdatedAt),
		})
		if err != nil {
			return classifyWrite(err, "update order")
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}

		if err := q.DeleteOrderDetails(ctx, o.ID); err != nil {
			return fmt.Errorf("delete order details: %w", err)
		}
		if err := insertDetails(ctx, q, o.ID, o.Details); err != nil {
			return err
		}

		// order_number is immutable; reload it for the event.
		row, err := q.GetOrderByID(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		o.OrderNumber = row.OrderNumber
		return r.publish(ctx, tx, domainevents.TopicOrderUpdated, o, *o.UpdatedAt)
	})
}

// Delete removes an order; its details go with it through ON DELETE CASCADE.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeleteOrder(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return n > 0, nil
}

func insertDetails(ctx context.Context, q *db.Queries, orderID int64, details []models.OrderDetail) error {
	for i := range details {
		d := &details[i]
		id, err := q.InsertOrderDetail(ctx, db.InsertOrderDetailParams{
			OrderID:   orderID,
			ItemID:    d.ItemID,
			Quantity:  d.Quantity,
			Price:     d.Price,
			Total:     d.Total,
			CreatedBy: d.CreatedBy,
			CreatedAt: d.CreatedAt,
		})
		if err != nil {
			return classifyWrite(err, fmt.Sprintf("insert order detail %d", i))
		}
		d.ID = id
		d.OrderID = orderID
	}
	return nil
}

func (r *OrderRepository) publish(ctx context.Context, tx *sql.Tx, topic string, o *models.Order, occurred time.Time) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.OrderEvent{
		EventID:     uuid.New(),
		Version:     domainevents.OrderEventVersion,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		PersonID:    o.PersonID,
		Total:       o.Total,
		LineCount:   len(o.Details),
		OccurredAt:  occurred,
	}
	msg, err := events.NewMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	if err := r.bus.PublishTx(ctx, tx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// readSnapshot makes a header read and its detail read see the same data.
var readSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func isNumberConflict(err error) bool {
	return database.IsUniqueViolation(err, orderNumberConstraint) || database.IsRetryable(err)
}

// classifyWrite maps constraint failures a validated request can still hit
// (a person or item deleted concurrently) to domain errors.
func classifyWrite(err error, op string) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %w", orderdomain.ErrMissingReference, op, err)
	case database.IsInvalidValue(err):
		return fmt.Errorf("%w: %s: %w", orderdomain.ErrInvalidOrder, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func assemble(rows []db.OrderingOrder, details []db.OrderingOrderDetail) []*models.Order {
	orders := make([]*models.Order, len(rows))
	byID := make(map[int64]*models.Order, len(rows))
	for i, row := range rows {
		orders[i] = rowToOrder(row)
		byID[row.ID] = orders[i]
	}
	for _, d := range details {
		if o, ok := byID[d.OrderID]; ok {
			o.Details = append(o.Details, rowToDetail(d))
		}
	}
	return orders
}

func rowToOrder(row db.OrderingOrder) *models.Order {
	return &models.Order{
		ID:          row.ID,
		PersonID:    row.PersonID,
		OrderNumber: row.OrderNumber,
		Total:       row.Total,
		Stamp:       stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}

func rowToDetail(row db.OrderingOrderDetail) models.OrderDetail {
	return models.OrderDetail{
		ID:       row.ID,
		OrderID:  row.OrderID,
		ItemID:   row.ItemID,
		Quantity: row.Quantity,
		Price:    row.Price,
		Total:    row.Total,
		Stamp:    stamp(row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt),
	}
}

func stamp(createdBy string, createdAt time.Time, updatedBy sql.NullString, updatedAt sql.NullTime) audit.Stamp {
	return audit.Stamp{
		CreatedBy: createdBy,
		CreatedAt: createdAt.UTC(),
		UpdatedBy: database.StringPtr(updatedBy),
		UpdatedAt: database.TimePtr(updatedAt),
	}
}
