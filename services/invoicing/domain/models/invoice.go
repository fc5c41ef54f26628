package models

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Invoice is a client's bill. Total always equals the sum of its detail totals.
type Invoice struct {
	ID            int64
	ClientID      int64
	InvoiceNumber int64
	Total         decimal.Decimal
	Details       []Detail
	audit.Stamp
}

// Detail is one line of an invoice with the product price captured when
// the line was written.
type Detail struct {
	ID        int64
	InvoiceID int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
	Total     decimal.Decimal
	audit.Stamp
}

// Line is a requested (product, quantity) pair before prices are resolved.
type Line struct {
	ProductID int64
	Quantity  int32
}
