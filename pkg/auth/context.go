package auth

import (
	"context"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// Actor is the signed-in principal attached to a request.
type Actor struct {
	PersonID int64
	Email    string
}

// WithActor returns a new context with the given Actor attached.
// Used by session middleware after validating the session.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the session actor from ctx. ok is false for
// unauthenticated requests.
func ActorFromCtx(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	if !ok || a.PersonID <= 0 {
		return Actor{}, false
	}
	return a, true
}

// ActorName is the value recorded in created_by/updated_by columns: the
// actor's email, or audit.Anonymous without a session.
func ActorName(ctx context.Context) string {
	if a, ok := ActorFromCtx(ctx); ok && a.Email != "" {
		return a.Email
	}
	return audit.Anonymous
}
