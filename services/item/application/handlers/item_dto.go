package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/money"
	appsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

// ItemRequest is the request body for POST and PUT /items. Price accepts a
// JSON string or number with at most two decimals.
type ItemRequest struct {
	Name  string           `json:"name"  validate:"required,max=255" example:"Sample Item"`
	Price *decimal.Decimal `json:"price" validate:"required" swaggertype:"string" example:"10.00"`
} // @name ItemRequest

// ItemResponse is the JSON representation of an Item.
type ItemResponse struct {
	ID        int64      `json:"id"         example:"1"`
	Name      string     `json:"name"       example:"Sample Item"`
	Price     string     `json:"price"      example:"10.00"`
	CreatedBy string     `json:"created_by" example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *string    `json:"updated_by" example:"ana@example.com"`
	UpdatedAt *time.Time `json:"updated_at" example:"2024-01-16T08:00:00Z"`
} // @name ItemResponse

func (r ItemRequest) toInput() appsvcs.ItemInput {
	return appsvcs.ItemInput{Name: r.Name, Price: *r.Price}
}

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		Name:      i.Name.String(),
		Price:     money.Format(i.Price),
		CreatedBy: i.CreatedBy,
		CreatedAt: i.CreatedAt,
		UpdatedBy: i.UpdatedBy,
		UpdatedAt: i.UpdatedAt,
	}
}
