package handlers

import (
	"time"

	"github.com/ghuser/orderdesk/pkg/money"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// OrderLineRequest is one requested line: an item and how many of it.
type OrderLineRequest struct {
	ItemID   int64 `json:"item_id"  validate:"required,gt=0" example:"1"`
	Quantity int32 `json:"quantity" validate:"required,gt=0" example:"2"`
} // @name OrderLineRequest

// OrderRequest is the request body for POST and PUT /orders. On PUT the
// lines replace every existing detail.
type OrderRequest struct {
	PersonID int64              `json:"person_id" validate:"required,gt=0" example:"1"`
	Lines    []OrderLineRequest `json:"lines"     validate:"required,min=1,dive"`
} // @name OrderRequest

// OrderDetailResponse is one priced line of an order.
type OrderDetailResponse struct {
	ID        int64      `json:"id"         example:"1"`
	ItemID    int64      `json:"item_id"    example:"1"`
	Quantity  int32      `json:"quantity"   example:"2"`
	Price     string     `json:"price"      example:"10.00"`
	Total     string     `json:"total"      example:"20.00"`
	CreatedBy string     `json:"created_by" example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *string    `json:"updated_by"`
	UpdatedAt *time.Time `json:"updated_at"`
} // @name OrderDetailResponse

// OrderResponse is the JSON representation of an Order with its details.
type OrderResponse struct {
	ID          int64                 `json:"id"           example:"1"`
	PersonID    int64                 `json:"person_id"    example:"1"`
	OrderNumber int64                 `json:"order_number" example:"1001"`
	Total       string                `json:"total"        example:"20.00"`
	Details     []OrderDetailResponse `json:"details"`
	CreatedBy   string                `json:"created_by"   example:"ana@example.com"`
	CreatedAt   time.Time             `json:"created_at"   example:"2024-01-15T10:30:00Z"`
	UpdatedBy   *string               `json:"updated_by"`
	UpdatedAt   *time.Time            `json:"updated_at"`
} // @name OrderResponse

func (r OrderRequest) toInput() appsvcs.OrderInput {
	lines := make([]models.Line, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = models.Line{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	return appsvcs.OrderInput{PersonID: r.PersonID, Lines: lines}
}

func toOrderResponse(o *models.Order) OrderResponse {
	details := make([]OrderDetailResponse, len(o.Details))
	for i, d := range o.Details {
		details[i] = OrderDetailResponse{
			ID:        d.ID,
			ItemID:    d.ItemID,
			Quantity:  d.Quantity,
			Price:     money.Format(d.Price),
			Total:     money.Format(d.Total),
			CreatedBy: d.CreatedBy,
			CreatedAt: d.CreatedAt,
			UpdatedBy: d.UpdatedBy,
			UpdatedAt: d.UpdatedAt,
		}
	}
	return OrderResponse{
		ID:          o.ID,
		PersonID:    o.PersonID,
		OrderNumber: o.OrderNumber,
		Total:       money.Format(o.Total),
		Details:     details,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedBy:   o.UpdatedBy,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
