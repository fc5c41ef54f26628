package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name     string
		personID int64
		lines    []models.Line
		wantErr  bool
	}{
		{"valid", 1, []models.Line{{ItemID: 1, Quantity: 2}}, false},
		{"zero person", 0, []models.Line{{ItemID: 1, Quantity: 2}}, true},
		{"negative person", -4, []models.Line{{ItemID: 1, Quantity: 2}}, true},
		{"no lines", 1, nil, true},
		{"zero item", 1, []models.Line{{ItemID: 0, Quantity: 1}}, true},
		{"zero quantity", 1, []models.Line{{ItemID: 1, Quantity: 0}}, true},
		{"negative quantity in second line", 1, []models.Line{{ItemID: 1, Quantity: 1}, {ItemID: 2, Quantity: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.personID, tt.lines)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOrder error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPriceLines_TotalsAreSumOfLines(t *testing.T) {
	prices := map[int64]decimal.Decimal{
		1: decimal.RequireFromString("10.00"),
		2: decimal.RequireFromString("0.35"),
		3: decimal.RequireFromString("19.99"),
	}
	lines := []models.Line{{ItemID: 1, Quantity: 2}, {ItemID: 2, Quantity: 3}, {ItemID: 3, Quantity: 7}, {ItemID: 1, Quantity: 1}}
	stamp := audit.New("ana@x.com", time.Now())

	details, total, err := PriceLines(lines, prices, stamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != len(lines) {
		t.Fatalf("expected %d details, got %d", len(lines), len(details))
	}

	sum := decimal.Zero
	for i, d := range details {
		if d.ItemID != lines[i].ItemID || d.Quantity != lines[i].Quantity {
			t.Fatalf("detail %d out of order: %+v", i, d)
		}
		want := prices[d.ItemID].Mul(decimal.NewFromInt32(d.Quantity))
		if !d.Total.Equal(want) {
			t.Errorf("detail %d total: got %s, want %s", i, d.Total, want)
		}
		if d.CreatedBy != "ana@x.com" {
			t.Errorf("detail %d created_by: got %q", i, d.CreatedBy)
		}
		sum = sum.Add(d.Total)
	}
	if !total.Equal(sum) {
		t.Fatalf("grand total %s != sum of lines %s", total, sum)
	}
	if total.StringFixed(2) != "170.98" {
		t.Fatalf("expected 170.98, got %s", total.StringFixed(2))
	}
}

func TestPriceLines_SnapshotIsIndependentOfLaterPrices(t *testing.T) {
	prices := map[int64]decimal.Decimal{1: decimal.RequireFromString("10.00")}
	details, total, err := PriceLines([]models.Line{{ItemID: 1, Quantity: 2}}, prices, audit.Stamp{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prices[1] = decimal.RequireFromString("99.00")

	if details[0].Price.StringFixed(2) != "10.00" || total.StringFixed(2) != "20.00" {
		t.Fatalf("snapshot changed: price %s total %s", details[0].Price, total)
	}
}

func TestPriceLines_MissingPrice(t *testing.T) {
	_, _, err := PriceLines([]models.Line{{ItemID: 9, Quantity: 1}}, map[int64]decimal.Decimal{}, audit.Stamp{})
	if err == nil {
		t.Fatal("expected error for unpriced item")
	}
}

func TestPriceLines_RejectsTotalsAboveColumnRange(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.Line
		price string
	}{
		{"line total", []models.Line{{ItemID: 1, Quantity: 2147483647}}, "9999999999999999.99"},
		{"grand total", []models.Line{{ItemID: 1, Quantity: 1}, {ItemID: 1, Quantity: 1}}, "9999999999999999.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := map[int64]decimal.Decimal{1: decimal.RequireFromString(tt.price)}
			_, _, err := PriceLines(tt.lines, prices, audit.Stamp{})
			if !errors.Is(err, money.ErrTooLarge) {
				t.Fatalf("PriceLines error = %v, want ErrTooLarge", err)
			}
		})
	}
}
