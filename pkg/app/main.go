package app

import (
	"context"

	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/events"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route functions during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order placed", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus   // nil disables outbox publishing
	Redis        *cache.RedisClient // nil disables the item cache
	SessionStore sessions.Store     // Redis-backed session store; nil in worker process
	Metrics      *telemetry.Metrics
	Errors       *errhttp.Responder
}

// ItemCache returns the Redis item cache, or nil when Redis is not wired.
func (a *Application) ItemCache() *cache.ItemCache {
	if a.Redis == nil {
		return nil
	}
	return cache.NewItemCache(a.Redis, a.Config.ItemCacheTTL)
}

// NumberingPolicy returns the retry policy for the named number sequence
// ("order", "invoice"). Every replay is logged and counted.
func (a *Application) NumberingPolicy(sequence string) database.RetryPolicy {
	return database.RetryPolicy{
		MaxRetries: a.Config.NumberingMaxRetries,
		OnRetry: func(attempt int, err error) {
			a.Logger.Warn("numbering conflict, retrying transaction",
				"sequence", sequence, "attempt", attempt, "error", err)
			a.Metrics.NumberingRetry(context.Background(), sequence)
		},
	}
}
