// Package services contains stateless domain services for the invoicing
// bounded context.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
	maxEmailLength       = 255
	maxPhoneLength       = 50
)

// ValidateProduct checks a Product about to be saved.
func ValidateProduct(p *models.Product) error {
	if p == nil {
		return errors.New("product cannot be nil")
	}
	if err := validateText("name", p.Name, maxNameLength, true); err != nil {
		return err
	}
	if len([]rune(p.Description)) > maxDescriptionLength {
		return fmt.Errorf("description must not exceed %d characters", maxDescriptionLength)
	}
	if err := money.ValidatePrice(p.Price); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	return nil
}

// ValidateClient checks a Client about to be saved.
func ValidateClient(c *models.Client) error {
	if c == nil {
		return errors.New("client cannot be nil")
	}
	if err := validateText("name", c.Name, maxNameLength, true); err != nil {
		return err
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if len(c.Email) > maxEmailLength {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	local, domain, ok := strings.Cut(c.Email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(c.Email, " \t") {
		return fmt.Errorf("email %q is not a valid address", c.Email)
	}
	if c.Phone != nil {
		if err := validateText("phone", *c.Phone, maxPhoneLength, false); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInvoice checks the shape of an invoice request.
func ValidateInvoice(clientID int64, lines []models.Line) error {
	if clientID <= 0 {
		return errors.New("client_id must be positive")
	}
	if len(lines) == 0 {
		return errors.New("an invoice needs at least one line")
	}
	for i, l := range lines {
		if l.ProductID <= 0 {
			return fmt.Errorf("lines[%d]: product_id must be positive", i)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("lines[%d]: quantity must be positive", i)
		}
	}
	return nil
}

// PriceLines turns requested lines into invoice details at the snapshot
// prices keyed by product id and returns them with the grand total.
func PriceLines(lines []models.Line, prices map[int64]decimal.Decimal, stamp audit.Stamp) ([]models.Detail, decimal.Decimal, error) {
	details := make([]models.Detail, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		price, ok := prices[l.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("no price for product %d", l.ProductID)
		}
		lineTotal := money.LineTotal(l.Quantity, price)
		if err := money.CheckRange(lineTotal); err != nil {
			return nil, decimal.Zero, fmt.Errorf("lines[%d]: line total: %w", i, err)
		}
		details[i] = models.Detail{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     price,
			Total:     lineTotal,
			Stamp:     stamp,
		}
		total = total.Add(lineTotal)
	}
	if err := money.CheckRange(total); err != nil {
		return nil, decimal.Zero, fmt.Errorf("invoice total: %w", err)
	}
	return details, total, nil
}

func validateText(field, s string, maxLen int, required bool) error {
	if s == "" {
		if required {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
	if len([]rune(s)) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxLen)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}
