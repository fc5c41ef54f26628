package domain

import "errors"

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrder indicates an order id, person id or line violates domain constraints.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrMissingReference indicates the order names a person or item that does
	// not exist. Raised before any transaction is opened.
	ErrMissingReference = errors.New("missing reference")
)
