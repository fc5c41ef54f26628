package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/events"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	itemsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	itemEvents "github.com/ghuser/orderdesk/services/item/domain/events"
	orderEvents "github.com/ghuser/orderdesk/services/order/domain/events"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

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
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  tel.Metrics,
	}

	if err := registerSubscribers(ctx, a); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	items := itemsvcs.New(a).Item
	handlers := map[string]events.Handler{
		itemEvents.TopicItemChanged:   handleItemChanged(a, items),
		orderEvents.TopicOrderPlaced:  handleOrderEvent(a, "placed"),
		orderEvents.TopicOrderUpdated: handleOrderEvent(a, "updated"),
	}

	topics := make([]string, 0, len(handlers))
	for topic, h := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, h)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// itemRefresher is the slice of ItemService the worker needs.
type itemRefresher interface {
	Refresh(ctx context.Context, id int64) error
}

// handleItemChanged reloads the changed item into the Redis read model, or
// evicts it when the item is gone. Handlers must be idempotent; EventBus
// retries on failure.
func handleItemChanged(a *app.Application, items itemRefresher) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := items.Refresh(ctx, evt.ItemID); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "item cache refreshed", "item_id", evt.ItemID, "deleted", evt.Deleted)
		return nil
	}
}

// handleOrderEvent counts committed orders by kind.
func handleOrderEvent(a *app.Application, kind string) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Metrics.OrderPlaced(ctx, kind)
		a.Logger.InfoContext(ctx, "order event consumed",
			"kind", kind,
			"order_id", evt.OrderID,
			"order_number", evt.OrderNumber,
			"line_count", evt.LineCount,
		)
		return nil
	}
}
