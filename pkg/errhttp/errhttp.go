// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusFor for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
)

// Responder writes error responses. 5xx errors are logged and reported to
// Sentry; in production their message is replaced by the status text.
type Responder struct {
	log        logger.Logger
	production bool
}

// NewResponder returns a Responder logging through log.
func NewResponder(log logger.Logger, production bool) *Responder {
	return &Responder{log: log, production: production}
}

// Write maps err to an HTTP status code and writes a JSON error response.
func (rs *Responder) Write(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		rs.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, rs.production))
}

// StatusFor returns the HTTP status for err. Uses errors.Is() so wrapped
// sentinel errors are matched correctly. Unrecognized errors are 500.
func StatusFor(err error) int {
	switch {
	// Missing references inside an order or invoice are client errors even
	// though the referenced entity is "not found".
	case errors.Is(err, orderdomain.ErrMissingReference),
		errors.Is(err, invoicingdomain.ErrMissingReference):
		return http.StatusBadRequest // 400

	case errors.Is(err, httpx.ErrInvalidID),
		errors.Is(err, paging.ErrInvalidPage),
		errors.Is(err, persondomain.ErrInvalidPerson),
		errors.Is(err, itemdomain.ErrInvalidItem),
		errors.Is(err, orderdomain.ErrInvalidOrder),
		errors.Is(err, invoicingdomain.ErrInvalidProduct),
		errors.Is(err, invoicingdomain.ErrInvalidClient),
		errors.Is(err, invoicingdomain.ErrInvalidInvoice),
		errors.Is(err, messagedomain.ErrInvalidMessage):
		return http.StatusBadRequest // 400

	case errors.Is(err, persondomain.ErrPersonNotFound),
		errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, invoicingdomain.ErrProductNotFound),
		errors.Is(err, invoicingdomain.ErrClientNotFound),
		errors.Is(err, invoicingdomain.ErrInvoiceNotFound),
		errors.Is(err, messagedomain.ErrMessageNotFound):
		return http.StatusNotFound // 404

	case errors.Is(err, persondomain.ErrEmailTaken),
		errors.Is(err, persondomain.ErrPersonInUse),
		errors.Is(err, itemdomain.ErrItemInUse),
		errors.Is(err, invoicingdomain.ErrProductInUse),
		errors.Is(err, invoicingdomain.ErrClientInUse):
		return http.StatusConflict // 409

	default:
		return http.StatusInternalServerError // 500
	}
}
