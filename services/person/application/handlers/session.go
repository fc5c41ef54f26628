package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/person/application/services"
)

// SessionHandler signs persons in and out. The signed-in person becomes the
// actor recorded in audit columns.
type SessionHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	errs  *errhttp.Responder
}

func NewSessionHandler(svc *appsvcs.Services, store sessions.Store, errs *errhttp.Responder) *SessionHandler {
	return &SessionHandler{svc: svc, store: store, errs: errs}
}

// Create starts a session for the person registered under the given email.
//
//	@Summary	Sign in
//	@Tags		session
//	@Accept		json
//	@Param		request	body	SessionRequest	true	"Credentials"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/session [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SessionRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Person.FindByEmail(r.Context(), req.Email)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if err := auth.StartSession(w, r, h.store, auth.Actor{PersonID: p.ID, Email: p.Email}); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Delete ends the current session.
//
//	@Summary	Sign out
//	@Tags		session
//	@Success	204
//	@Router		/session [delete]
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := auth.EndSession(w, r, h.store); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}
