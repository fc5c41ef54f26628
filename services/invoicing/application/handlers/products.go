package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/invoicing/application/services"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
)

// ProductHandler serves /products.
type ProductHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewProductHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ProductHandler {
	return &ProductHandler{svc: svc, errs: errs}
}

// List returns a page of products.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[ProductResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	products, total, err := h.svc.Product.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(mapSlice(products, toProductResponse), total, opts.Limit, opts.Offset))
}

// Get returns a single product.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	product, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if product == nil {
		h.errs.Write(w, r, invoicingdomain.ErrProductNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}

// Create adds a product.
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Product"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	product, err := h.svc.Product.Create(r.Context(), auth.ActorName(r.Context()), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/products/%d", product.ID), toProductResponse(product))
}

// Update replaces a product's fields.
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Param		id		path	int				true	"Product id"
//	@Param		request	body	ProductRequest	true	"Product"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Product.Update(r.Context(), id, auth.ActorName(r.Context()), req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes a product no invoice refers to.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	int	true	"Product id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse	"Product is on an invoice"
//	@Router		/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Product.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, invoicingdomain.ErrProductNotFound)
		return
	}
	httpx.NoContent(w)
}
