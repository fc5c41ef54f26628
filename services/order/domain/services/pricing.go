// Package services contains stateless domain services for the order bounded context.
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// ValidateOrder checks the shape of an order request: a positive person id
// and at least one line, each with a positive item id and quantity.
func ValidateOrder(personID int64, lines []models.Line) error {
	if personID <= 0 {
		return errors.New("person_id must be positive")
	}
	if len(lines) == 0 {
		return errors.New("an order needs at least one line")
	}
	for i, l := range lines {
		if l.ItemID <= 0 {
			return fmt.Errorf("lines[%d]: item_id must be positive", i)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("lines[%d]: quantity must be positive", i)
		}
	}
	return nil
}

// PriceLines turns requested lines into order details using the snapshot
// prices keyed by item id. Each detail total is quantity × price and the
// returned grand total is the sum of the detail totals. Every detail carries
// stamp. Lines keep their request order.
func PriceLines(lines []models.Line, prices map[int64]decimal.Decimal, stamp audit.Stamp) ([]models.OrderDetail, decimal.Decimal, error) {
	details := make([]models.OrderDetail, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		price, ok := prices[l.ItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("no price for item %d", l.ItemID)
		}
		lineTotal := money.LineTotal(l.Quantity, price)
		if err := money.CheckRange(lineTotal); err != nil {
			return nil, decimal.Zero, fmt.Errorf("lines[%d]: line total: %w", i, err)
		}
		details[i] = models.OrderDetail{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Price:    price,
			Total:    lineTotal,
			Stamp:    stamp,
		}
		total = total.Add(lineTotal)
	}
	if err := money.CheckRange(total); err != nil {
		return nil, decimal.Zero, fmt.Errorf("order total: %w", err)
	}
	return details, total, nil
}
