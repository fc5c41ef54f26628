package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

func TestValidateProduct(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		product *models.Product
		wantErr bool
	}{
		{"valid", models.NewProduct("Lamp", "", decimal.RequireFromString("9.99"), "", now), false},
		{"nil", nil, true},
		{"blank name", models.NewProduct("  ", "", decimal.NewFromInt(1), "", now), true},
		{"long name", models.NewProduct(strings.Repeat("a", 256), "", decimal.NewFromInt(1), "", now), true},
		{"negative price", models.NewProduct("Lamp", "", decimal.NewFromInt(-1), "", now), true},
		{"sub-cent price", models.NewProduct("Lamp", "", decimal.RequireFromString("0.001"), "", now), true},
		{"price above column range", models.NewProduct("Lamp", "", decimal.RequireFromString("1e17"), "", now), true},
		{"control character", models.NewProduct("La\x00mp", "", decimal.NewFromInt(1), "", now), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateClient(t *testing.T) {
	now := time.Now()
	longPhone := strings.Repeat("1", 51)
	tests := []struct {
		name    string
		client  *models.Client
		wantErr bool
	}{
		{"valid", models.NewClient("Acme", "billing@acme.com", nil, "", now), false},
		{"no name", models.NewClient("", "billing@acme.com", nil, "", now), true},
		{"no email", models.NewClient("Acme", "", nil, "", now), true},
		{"bad email", models.NewClient("Acme", "acme.com", nil, "", now), true},
		{"long phone", models.NewClient("Acme", "billing@acme.com", &longPhone, "", now), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClient(tt.client)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateClient() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInvoice(t *testing.T) {
	if err := ValidateInvoice(1, []models.Line{{ProductID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("valid invoice rejected: %v", err)
	}
	if err := ValidateInvoice(0, []models.Line{{ProductID: 1, Quantity: 1}}); err == nil {
		t.Fatal("zero client accepted")
	}
	if err := ValidateInvoice(1, nil); err == nil {
		t.Fatal("empty lines accepted")
	}
	if err := ValidateInvoice(1, []models.Line{{ProductID: 1, Quantity: -2}}); err == nil {
		t.Fatal("negative quantity accepted")
	}
}

func TestPriceLines(t *testing.T) {
	prices := map[int64]decimal.Decimal{
		1: decimal.RequireFromString("19.99"),
		2: decimal.RequireFromString("0.50"),
	}
	stamp := audit.New("ana@x.com", time.Now())

	details, total, err := PriceLines([]models.Line{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 5}}, prices, stamp)
	if err != nil {
		t.Fatalf("PriceLines: %v", err)
	}
	if got := total.StringFixed(2); got != "62.47" {
		t.Fatalf("total = %s, want 62.47", got)
	}
	if got := details[0].Total.StringFixed(2); got != "59.97" {
		t.Fatalf("line total = %s, want 59.97", got)
	}

	if _, _, err := PriceLines([]models.Line{{ProductID: 9, Quantity: 1}}, prices, stamp); err == nil {
		t.Fatal("unpriced product accepted")
	}
}

func TestPriceLines_RejectsTotalsAboveColumnRange(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.Line
	}{
		{"line total", []models.Line{{ProductID: 1, Quantity: 2147483647}}},
		{"grand total", []models.Line{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 1}}},
	}
	prices := map[int64]decimal.Decimal{1: money.Max}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := PriceLines(tt.lines, prices, audit.Stamp{})
			if !errors.Is(err, money.ErrTooLarge) {
				t.Fatalf("PriceLines error = %v, want ErrTooLarge", err)
			}
		})
	}
}
