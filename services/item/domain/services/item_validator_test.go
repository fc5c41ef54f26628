package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		input models.ItemName
		want  error
	}{
		{"Valid Item Name", nil},
		{"Item-Name_123!@#", nil},
		{"Café crème", nil},
		{" Name", errNamePadded},
		{"Name ", errNamePadded},
		{"   ", errNameBlank},
		{"", errNameBlank},
		{"Name\tName", errNameControl},
		{"Name\nName", errNameControl},
		{"Name\x7F", errNameControl},
		{"Item  Name", errNameSpacing},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateName(tt.input))
		})
	}
}

func TestValidateItem(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		item   *models.Item
		wantIs error
		ok     bool
	}{
		{name: "valid", item: models.NewItem("Widget", decimal.RequireFromString("10.00"), "", now), ok: true},
		{name: "free item", item: models.NewItem("Sample", decimal.Zero, "", now), ok: true},
		{name: "nil"},
		{name: "negative price", item: models.NewItem("Widget", decimal.RequireFromString("-1"), "", now), wantIs: money.ErrNegative},
		{name: "sub-cent price", item: models.NewItem("Widget", decimal.RequireFromString("0.001"), "", now), wantIs: money.ErrPrecision},
		{name: "price above column range", item: models.NewItem("Widget", decimal.RequireFromString("1e17"), "", now), wantIs: money.ErrTooLarge},
		{name: "bad name", item: models.NewItem("Bad\x00", decimal.NewFromInt(1), "", now), wantIs: errNameControl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
