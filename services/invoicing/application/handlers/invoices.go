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

// InvoiceHandler serves /invoices and /clients/{id}/invoices.
type InvoiceHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewInvoiceHandler(svc *appsvcs.Services, errs *errhttp.Responder) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, errs: errs}
}

// List returns a page of invoices with their details.
//
//	@Summary	List invoices
//	@Tags		invoices
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[InvoiceResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/invoices [get]
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	invoices, total, err := h.svc.Invoice.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(mapSlice(invoices, toInvoiceResponse), total, opts.Limit, opts.Offset))
}

// ListByClient returns a page of one client's invoices.
//
//	@Summary	List a client's invoices
//	@Tags		invoices
//	@Produce	json
//	@Param		id		path		int	true	"Client id"
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[InvoiceResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/clients/{id}/invoices [get]
func (h *InvoiceHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	invoices, total, err := h.svc.Invoice.ListByClient(r.Context(), clientID, opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(mapSlice(invoices, toInvoiceResponse), total, opts.Limit, opts.Offset))
}

// Get returns an invoice with its details.
//
//	@Summary	Get invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		int	true	"Invoice id"
//	@Success	200	{object}	InvoiceResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/invoices/{id} [get]
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	invoice, err := h.svc.Invoice.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if invoice == nil {
		h.errs.Write(w, r, invoicingdomain.ErrInvoiceNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toInvoiceResponse(invoice))
}

// Create issues an invoice at the products' current prices with the next
// invoice number.
//
//	@Summary	Create invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		request	body		InvoiceRequest	true	"Invoice"
//	@Success	201		{object}	InvoiceResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Validation failed or client/product does not exist"
//	@Router		/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[InvoiceRequest](w, r)
	if !ok {
		return
	}
	invoice, err := h.svc.Invoice.Create(r.Context(), auth.ActorName(r.Context()), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/invoices/%d", invoice.ID), toInvoiceResponse(invoice))
}

// Update replaces the client and lines and re-prices the invoice.
//
//	@Summary	Update invoice
//	@Tags		invoices
//	@Accept		json
//	@Param		id		path	int				true	"Invoice id"
//	@Param		request	body	InvoiceRequest	true	"Invoice"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/invoices/{id} [put]
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[InvoiceRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Invoice.Update(r.Context(), id, auth.ActorName(r.Context()), req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes an invoice and its details.
//
//	@Summary	Delete invoice
//	@Tags		invoices
//	@Param		id	path	int	true	"Invoice id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Invoice.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, invoicingdomain.ErrInvoiceNotFound)
		return
	}
	httpx.NoContent(w)
}
