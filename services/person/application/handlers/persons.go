package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/person/application/services"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
)

// PersonHandler serves the /persons collection.
type PersonHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewPersonHandler returns a PersonHandler backed by the given services.
func NewPersonHandler(svc *appsvcs.Services, errs *errhttp.Responder) *PersonHandler {
	return &PersonHandler{svc: svc, errs: errs}
}

// List returns a page of persons.
//
//	@Summary	List persons
//	@Tags		persons
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 50, max 200)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	httpx.Page[PersonResponse]
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/persons [get]
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	persons, total, err := h.svc.Person.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	out := make([]PersonResponse, len(persons))
	for i, p := range persons {
		out[i] = toPersonResponse(p)
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(out, total, opts.Limit, opts.Offset))
}

// Get returns a single person.
//
//	@Summary	Get person
//	@Tags		persons
//	@Produce	json
//	@Param		id	path		int	true	"Person id"
//	@Success	200	{object}	PersonResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/persons/{id} [get]
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	p, err := h.svc.Person.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if p == nil {
		h.errs.Write(w, r, persondomain.ErrPersonNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toPersonResponse(p))
}

// Create registers a new person.
//
//	@Summary	Create person
//	@Tags		persons
//	@Accept		json
//	@Produce	json
//	@Param		request	body		PersonRequest	true	"Person"
//	@Success	201		{object}	PersonResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	409		{object}	httpx.ErrorResponse
//	@Router		/persons [post]
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PersonRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Person.Create(r.Context(), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/persons/%d", p.ID), toPersonResponse(p))
}

// Update replaces a person's fields.
//
//	@Summary	Update person
//	@Tags		persons
//	@Accept		json
//	@Param		id		path	int				true	"Person id"
//	@Param		request	body	PersonRequest	true	"Person"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse
//	@Router		/persons/{id} [put]
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[PersonRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Person.Update(r.Context(), id, req.toInput()); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes a person.
//
//	@Summary	Delete person
//	@Tags		persons
//	@Param		id	path	int	true	"Person id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse
//	@Router		/persons/{id} [delete]
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Person.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, persondomain.ErrPersonNotFound)
		return
	}
	httpx.NoContent(w)
}
