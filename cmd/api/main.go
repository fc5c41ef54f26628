package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/orderdesk/docs/swagger"
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/events"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	invoicingApi "github.com/ghuser/orderdesk/services/invoicing/application/api"
	itemApi "github.com/ghuser/orderdesk/services/item/application/api"
	messageApi "github.com/ghuser/orderdesk/services/message/application/api"
	orderApi "github.com/ghuser/orderdesk/services/order/application/api"
	personApi "github.com/ghuser/orderdesk/services/person/application/api"
)

// @title			OrderDesk API
// @version		1.0
// @description	Persons, items, orders, invoicing and messages over PostgreSQL.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // startup failure, deferred flushes are best-effort
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.SessionTTL,
		cfg.IsProduction(),
	)

	a := &app.Application{
		Config:       cfg,
		Db:           pool,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		SessionStore: sessionStore,
		Metrics:      tel.Metrics,
		Errors:       errhttp.NewResponder(log, cfg.IsProduction()),
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", tel.Handler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.LoadActor(sessionStore, log))
		personApi.SessionRoutes(r, a)
		r.Group(func(r chi.Router) {
			if cfg.AuthRequired {
				r.Use(auth.RequireAuthForWrites(sessionStore, log))
			}
			registerRoutes(r, a)
		})
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, a *app.Application) {
	personApi.PersonRoutes(r, a)
	itemApi.ItemRoutes(r, a)
	orderApi.OrderRoutes(r, a)
	invoicingApi.InvoicingRoutes(r, a)
	messageApi.MessageRoutes(r, a)
}
