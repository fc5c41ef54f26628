package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Product is a sellable entry referenced by invoice details.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	audit.Stamp
}

// NewProduct builds an unsaved Product created by actor at now.
func NewProduct(name, description string, price decimal.Decimal, actor string, now time.Time) *Product {
	p := &Product{Stamp: audit.New(actor, now)}
	p.set(name, description, price)
	return p
}

// Replace overwrites every mutable field and records the update.
func (p *Product) Replace(name, description string, price decimal.Decimal, actor string, now time.Time) {
	p.set(name, description, price)
	p.Touch(actor, now)
}

func (p *Product) set(name, description string, price decimal.Decimal) {
	p.Name = strings.TrimSpace(name)
	p.Description = strings.TrimSpace(description)
	p.Price = price
}
