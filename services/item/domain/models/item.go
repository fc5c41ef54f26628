package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Item is a catalog entry that order lines reference. Its current price is
// copied into each line when the line is written.
type Item struct {
	ID    int64
	Name  ItemName
	Price decimal.Decimal
	audit.Stamp
}

// NewItem builds an unsaved Item created by actor at now.
func NewItem(name ItemName, price decimal.Decimal, actor string, now time.Time) *Item {
	return &Item{
		Name:  name,
		Price: price,
		Stamp: audit.New(actor, now),
	}
}

// Replace overwrites name and price and records the update.
func (i *Item) Replace(name ItemName, price decimal.Decimal, actor string, now time.Time) {
	i.Name = name
	i.Price = price
	i.Touch(actor, now)
}
