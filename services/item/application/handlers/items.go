package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
)

// ItemHandler serves the /items catalog.
type ItemHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewItemHandler returns an ItemHandler backed by the given services.
func NewItemHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ItemHandler {
	return &ItemHandler{svc: svc, errs: errs}
}

// List returns a page of items.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[ItemResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/items [get]
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	items, total, err := h.svc.Item.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(out, total, opts.Limit, opts.Offset))
}

// Get returns a single item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item id"
//	@Success	200	{object}	ItemResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [get]
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if item == nil {
		h.errs.Write(w, r, itemdomain.ErrItemNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// Create adds an item to the catalog.
//
//	@Summary	Create item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ItemRequest	true	"Item"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/items [post]
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Item.Create(r.Context(), auth.ActorName(r.Context()), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/items/%d", item.ID), toItemResponse(item))
}

// Update replaces an item's name and price. Existing order lines keep
// their snapshotted price.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Param		id		path	int				true	"Item id"
//	@Param		request	body	ItemRequest	true	"Item"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [put]
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Item.Update(r.Context(), id, auth.ActorName(r.Context()), req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes an item from the catalog.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	int	true	"Item id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [delete]
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Item.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, itemdomain.ErrItemNotFound)
		return
	}
	httpx.NoContent(w)
}
