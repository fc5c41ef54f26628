package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItem indicates an item id, name or price violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrItemInUse indicates order lines still reference the item.
	ErrItemInUse = errors.New("item is referenced by orders")
)
