package models

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Order is a person's purchase. Total always equals the sum of its detail totals.
type Order struct {
	ID          int64
	PersonID    int64
	OrderNumber int64
	Total       decimal.Decimal
	Details     []OrderDetail
	audit.Stamp
}

// OrderDetail is one line of an order. Price is the item's price when the
// line was written, not the item's current price.
type OrderDetail struct {
	ID       int64
	OrderID  int64
	ItemID   int64
	Quantity int32
	Price    decimal.Decimal
	Total    decimal.Decimal
	audit.Stamp
}

// Line is a requested (item, quantity) pair before prices are resolved.
type Line struct {
	ItemID   int64
	Quantity int32
}
