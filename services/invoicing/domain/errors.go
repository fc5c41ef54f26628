package domain

import "errors"

// Sentinel errors for the invoicing domain. Use errors.Is() to check these.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	// ErrProductInUse indicates an invoice detail still references the product.
	ErrProductInUse = errors.New("product is referenced by invoices")

	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("invalid client")
	// ErrClientInUse indicates the client still has invoices.
	ErrClientInUse = errors.New("client has invoices")

	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidInvoice  = errors.New("invalid invoice")

	// ErrMissingReference indicates an invoice names a client or product that
	// does not exist.
	ErrMissingReference = errors.New("missing reference")
)
