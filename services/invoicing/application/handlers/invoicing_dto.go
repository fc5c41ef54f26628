package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/money"
	appsvcs "github.com/ghuser/orderdesk/services/invoicing/application/services"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
)

// ProductRequest is the request body for POST and PUT /products.
type ProductRequest struct {
	Name        string           `json:"name"        validate:"required,max=255" example:"Consulting hour"`
	Description string           `json:"description" validate:"max=2000"         example:"Senior engineer, remote"`
	Price       *decimal.Decimal `json:"price"       validate:"required"         swaggertype:"string" example:"120.00"`
} // @name ProductRequest

type ProductResponse struct {
	ID          int64      `json:"id"          example:"1"`
	Name        string     `json:"name"        example:"Consulting hour"`
	Description string     `json:"description" example:"Senior engineer, remote"`
	Price       string     `json:"price"       example:"120.00"`
	CreatedBy   string     `json:"created_by"  example:"ana@example.com"`
	CreatedAt   time.Time  `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedBy   *string    `json:"updated_by"`
	UpdatedAt   *time.Time `json:"updated_at"`
} // @name ProductResponse

// ClientRequest is the request body for POST and PUT /clients. Phone may be
// omitted or null.
type ClientRequest struct {
	Name  string  `json:"name"  validate:"required,max=255"       example:"Acme Corp"`
	Email string  `json:"email" validate:"required,email,max=255" example:"billing@acme.example"`
	Phone *string `json:"phone" validate:"omitempty,max=50"       example:"+1 555 0100"`
} // @name ClientRequest

type ClientResponse struct {
	ID        int64      `json:"id"         example:"1"`
	Name      string     `json:"name"       example:"Acme Corp"`
	Email     string     `json:"email"      example:"billing@acme.example"`
	Phone     *string    `json:"phone"      example:"+1 555 0100"`
	CreatedBy string     `json:"created_by" example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *string    `json:"updated_by"`
	UpdatedAt *time.Time `json:"updated_at"`
} // @name ClientResponse

type InvoiceLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0" example:"1"`
	Quantity  int32 `json:"quantity"   validate:"required,gt=0" example:"3"`
} // @name InvoiceLineRequest

// InvoiceRequest is the request body for POST and PUT /invoices. On PUT the
// lines replace every existing detail.
type InvoiceRequest struct {
	ClientID int64                `json:"client_id" validate:"required,gt=0" example:"1"`
	Lines    []InvoiceLineRequest `json:"lines"     validate:"required,min=1,dive"`
} // @name InvoiceRequest

type InvoiceDetailResponse struct {
	ID        int64      `json:"id"         example:"1"`
	ProductID int64      `json:"product_id" example:"1"`
	Quantity  int32      `json:"quantity"   example:"3"`
	Price     string     `json:"price"      example:"120.00"`
	Total     string     `json:"total"      example:"360.00"`
	CreatedBy string     `json:"created_by" example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *string    `json:"updated_by"`
	UpdatedAt *time.Time `json:"updated_at"`
} // @name InvoiceDetailResponse

type InvoiceResponse struct {
	ID            int64                   `json:"id"             example:"1"`
	ClientID      int64                   `json:"client_id"      example:"1"`
	InvoiceNumber int64                   `json:"invoice_number" example:"1"`
	Total         string                  `json:"total"          example:"360.00"`
	Details       []InvoiceDetailResponse `json:"details"`
	CreatedBy     string                  `json:"created_by"     example:"ana@example.com"`
	CreatedAt     time.Time               `json:"created_at"     example:"2024-01-15T10:30:00Z"`
	UpdatedBy     *string                 `json:"updated_by"`
	UpdatedAt     *time.Time              `json:"updated_at"`
} // @name InvoiceResponse

func (r ProductRequest) toInput() appsvcs.ProductInput {
	return appsvcs.ProductInput{Name: r.Name, Description: r.Description, Price: *r.Price}
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money.Format(p.Price),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedBy:   p.UpdatedBy,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r ClientRequest) toInput() appsvcs.ClientInput {
	return appsvcs.ClientInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

func toClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedBy: c.UpdatedBy,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r InvoiceRequest) toInput() appsvcs.InvoiceInput {
	lines := make([]models.Line, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = models.Line{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return appsvcs.InvoiceInput{ClientID: r.ClientID, Lines: lines}
}

func toInvoiceResponse(inv *models.Invoice) InvoiceResponse {
	details := make([]InvoiceDetailResponse, len(inv.Details))
	for i, d := range inv.Details {
		details[i] = InvoiceDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     money.Format(d.Price),
			Total:     money.Format(d.Total),
			CreatedBy: d.CreatedBy,
			CreatedAt: d.CreatedAt,
			UpdatedBy: d.UpdatedBy,
			UpdatedAt: d.UpdatedAt,
		}
	}
	return InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		Total:         money.Format(inv.Total),
		Details:       details,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedBy:     inv.UpdatedBy,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func mapSlice[T, R any](in []*T, f func(*T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
