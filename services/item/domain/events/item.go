package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicItemChanged is the Watermill topic published when an Item is created,
// updated or deleted.
const TopicItemChanged = "item.changed"

// ItemChangedVersion is the current schema version of ItemChangedEvent.
const ItemChangedVersion = 1

// ItemChangedEvent is published in the same transaction as the item write.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemChanged)
// and refresh or evict their copy of the item.
type ItemChangedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64           `json:"item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Deleted    bool            `json:"deleted"`
	OccurredAt time.Time       `json:"occurred_at"`
}
