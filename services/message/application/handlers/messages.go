package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/message/application/services"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	"github.com/ghuser/orderdesk/services/message/domain/models"
)

type MessageRequest struct {
	Content string `json:"content" validate:"required,max=4000" example:"Call the supplier on Monday"`
} // @name MessageRequest

type MessageResponse struct {
	ID        int64      `json:"id"         example:"1"`
	Content   string     `json:"content"    example:"Call the supplier on Monday"`
	CreatedBy string     `json:"created_by" example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedBy *string    `json:"updated_by"`
	UpdatedAt *time.Time `json:"updated_at"`
} // @name MessageResponse

func toMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Content:   m.Content,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedBy: m.UpdatedBy,
		UpdatedAt: m.UpdatedAt,
	}
}

// MessageHandler serves /messages.
type MessageHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewMessageHandler(svc *appsvcs.Services, errs *errhttp.Responder) *MessageHandler {
	return &MessageHandler{svc: svc, errs: errs}
}

// @Summary	List messages
// @Tags		messages
// @Produce	json
// @Param		limit	query		int	false	"Page size (default 50, max 200)"
// @Param		offset	query		int	false	"Rows to skip"
// @Success	200		{object}	httpx.Page[MessageResponse]
// @Failure	400		{object}	httpx.ErrorResponse
// @Router		/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := httpx.PageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	messages, total, err := h.svc.Message.List(r.Context(), opts)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	out := make([]MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = toMessageResponse(m)
	}
	httpx.JSON(w, http.StatusOK, httpx.NewPage(out, total, opts.Limit, opts.Offset))
}

// @Summary	Get message
// @Tags		messages
// @Produce	json
// @Param		id	path		int	true	"Message id"
// @Success	200	{object}	MessageResponse
// @Failure	400	{object}	httpx.ErrorResponse
// @Failure	404	{object}	httpx.ErrorResponse
// @Router		/messages/{id} [get]
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	m, err := h.svc.Message.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if m == nil {
		h.errs.Write(w, r, messagedomain.ErrMessageNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, toMessageResponse(m))
}

// Create stores a message stamped with the session actor.
//
//	@Summary	Create message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		request	body		MessageRequest	true	"Message"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/messages [post]
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[MessageRequest](w, r)
	if !ok {
		return
	}
	m, err := h.svc.Message.Create(r.Context(), auth.ActorName(r.Context()), req.Content)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.Created(w, fmt.Sprintf("/api/messages/%d", m.ID), toMessageResponse(m))
}

// Update replaces the content.
//
//	@Summary	Update message
//	@Tags		messages
//	@Accept		json
//	@Param		id		path	int				true	"Message id"
//	@Param		request	body	MessageRequest	true	"Message"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/messages/{id} [put]
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[MessageRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Message.Update(r.Context(), id, auth.ActorName(r.Context()), req.Content); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// @Summary	Delete message
// @Tags		messages
// @Param		id	path	int	true	"Message id"
// @Success	204
// @Failure	400	{object}	httpx.ErrorResponse
// @Failure	404	{object}	httpx.ErrorResponse
// @Router		/messages/{id} [delete]
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	deleted, err := h.svc.Message.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if !deleted {
		h.errs.Write(w, r, messagedomain.ErrMessageNotFound)
		return
	}
	httpx.NoContent(w)
}
