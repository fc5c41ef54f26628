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

// ClientHandler serves /clients.
type ClientHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewClientHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ClientHandler {
	return &ClientHandler{svc: svc, errs: errs}
}

// List returns a page of clients.
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[ClientResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/clients [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	clients, total, err := h.svc.Client.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(mapSlice(clients, toClientResponse), total, opts.Limit, opts.Offset))
}

// Get returns one client.
//
//	@Summary	Get client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		int	true	"Client id"
//	@Success	200	{object}	ClientResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/clients/{id} [get]
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	client, err := h.svc.Client.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if client == nil {
		h.errs.Write(w, r, invoicingdomain.ErrClientNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toClientResponse(client))
}

// Create registers a client.
//
//	@Summary	Create client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ClientRequest	true	"Client"
//	@Success	201		{object}	ClientResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}
	client, err := h.svc.Client.Create(r.Context(), auth.ActorName(r.Context()), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/clients/%d", client.ID), toClientResponse(client))
}

// Update replaces a client's contact details.
//
//	@Summary	Update client
//	@Tags		clients
//	@Accept		json
//	@Param		id		path	int				true	"Client id"
//	@Param		request	body	ClientRequest	true	"Client"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/clients/{id} [put]
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Client.Update(r.Context(), id, auth.ActorName(r.Context()), req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes a client without invoices.
//
//	@Summary	Delete client
//	@Tags		clients
//	@Param		id	path	int	true	"Client id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse	"Client still has invoices"
//	@Router		/clients/{id} [delete]
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Client.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, invoicingdomain.ErrClientNotFound)
		return
	}
	httpx.NoContent(w)
}
