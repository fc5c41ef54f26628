package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// References resolves the persons and items an order points at. Implemented
// outside the order context; the order service never touches their tables.
type References interface {
	// PersonExists reports whether a person with id is stored.
	PersonExists(ctx context.Context, id int64) (bool, error)

	// ItemPrice returns the item's current price; ok is false when the item
	// does not exist.
	ItemPrice(ctx context.Context, id int64) (price decimal.Decimal, ok bool, err error)
}
