package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// TopicOrderPlaced is published when an order is created.
	TopicOrderPlaced = "order.placed"
	// TopicOrderUpdated is published when an order's lines are replaced.
	TopicOrderUpdated = "order.updated"
)

// OrderEventVersion is the current schema version of OrderEvent.
const OrderEventVersion = 1

// OrderEvent is published in the same transaction as the order write, on
// TopicOrderPlaced or TopicOrderUpdated.
type OrderEvent struct {
	EventID     uuid.UUID       `json:"event_id"`
	Version     int             `json:"version"`
	OrderID     int64           `json:"order_id"`
	OrderNumber int64           `json:"order_number"`
	PersonID    int64           `json:"person_id"`
	Total       decimal.Decimal `json:"total"`
	LineCount   int             `json:"line_count"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
