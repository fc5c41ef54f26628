// Package references resolves the persons and items an order names by
// calling the owning contexts' application services.
package references

import (
	"context"

	"github.com/shopspring/decimal"
)

// PersonLookup is the slice of the person service orders depend on.
type PersonLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ItemLookup is the slice of the item service orders depend on.
// CurrentPrice reads the stored price, never a cached copy, and reports ok
// false for an absent item.
type ItemLookup interface {
	CurrentPrice(ctx context.Context, id int64) (price decimal.Decimal, ok bool, err error)
}

// Resolver implements repositories.References.
type Resolver struct {
	persons PersonLookup
	items   ItemLookup
}

// New returns a Resolver backed by the person and item services.
func New(persons PersonLookup, items ItemLookup) *Resolver {
	return &Resolver{persons: persons, items: items}
}

// PersonExists reports whether a person with id exists.
func (r *Resolver) PersonExists(ctx context.Context, id int64) (bool, error) {
	return r.persons.Exists(ctx, id)
}

// ItemPrice returns the item's current price as stored.
func (r *Resolver) ItemPrice(ctx context.Context, id int64) (decimal.Decimal, bool, error) {
	return r.items.CurrentPrice(ctx, id)
}
