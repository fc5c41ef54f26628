package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
)

// OrderHandler serves /orders and /persons/{id}/orders.
type OrderHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewOrderHandler returns an OrderHandler backed by the given services.
func NewOrderHandler(svc *appsvcs.Services, errs *errhttp.Responder) *OrderHandler {
	return &OrderHandler{svc: svc, errs: errs}
}

// List returns a page of orders with their details.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[OrderResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	orders, total, err := h.svc.Order.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(toOrderResponses(orders), total, opts.Limit, opts.Offset))
}

// ListByPerson returns a page of one person's orders.
//
//	@Summary	List a person's orders
//	@Tags		orders
//	@Produce	json
//	@Param		id		path		int	true	"Person id"
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[OrderResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/persons/{id}/orders [get]
func (h *OrderHandler) ListByPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	orders, total, err := h.svc.Order.ListByPerson(r.Context(), personID, opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(toOrderResponses(orders), total, opts.Limit, opts.Offset))
}

// Get returns a single order with its details.
//
//	@Summary	Get order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	order, err := h.svc.Order.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if order == nil {
		h.errs.Write(w, r, orderdomain.ErrOrderNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Create places an order. Item prices are captured at this moment and the
// order receives the next order number.
//
//	@Summary	Create order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		OrderRequest	true	"Order"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Validation failed or person/item does not exist"
//	@Router		/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	order, err := h.svc.Order.Create(r.Context(), auth.ActorName(r.Context()), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/orders/%d", order.ID), toOrderResponse(order))
}

// Update replaces an order's person and all of its lines.
//
//	@Summary	Update order
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	int				true	"Order id"
//	@Param		request	body	OrderRequest	true	"Order"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Order.Update(r.Context(), id, auth.ActorName(r.Context()), req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes an order and its details.
//
//	@Summary	Delete order
//	@Tags		orders
//	@Param		id	path	int	true	"Order id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Order.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, orderdomain.ErrOrderNotFound)
		return
	}
	httpx.NoContent(w)
}
