package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
)

const (
	sessionName        = "orderdesk_session"
	sessionPersonIDKey = "person_id"
	sessionEmailKey    = "email"
)

// LoadActor is a chi middleware that attaches the session actor, if any, to
// the request context. Requests without a valid session pass through
// anonymously.
func LoadActor(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a, ok := actorFromSession(r, store, log); ok {
				r = r.WithContext(WithActor(r.Context(), a))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the actor, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a person id.
//
// After this middleware, handlers can safely call auth.ActorFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a, ok := ActorFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), a)))
				return
			}
			a, ok := actorFromSession(r, store, log)
			if !ok {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), a)))
		})
	}
}

// RequireAuthForWrites applies RequireAuth to every method except GET, HEAD
// and OPTIONS.
func RequireAuthForWrites(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := RequireAuth(store, log)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				guarded.ServeHTTP(w, r)
			}
		})
	}
}

func actorFromSession(r *http.Request, store sessions.Store, log logger.Logger) (Actor, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		log.WarnContext(r.Context(), "invalid session cookie", "error", err)
		return Actor{}, false
	}
	if session.IsNew {
		return Actor{}, false
	}

	personID, ok := session.Values[sessionPersonIDKey].(int64)
	if !ok || personID <= 0 {
		log.WarnContext(r.Context(), "session missing person_id")
		return Actor{}, false
	}
	email, _ := session.Values[sessionEmailKey].(string)
	return Actor{PersonID: personID, Email: email}, true
}
