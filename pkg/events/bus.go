// Package events is the PostgreSQL-backed pub/sub used for item and order
// change notifications, built on Watermill's SQL transport.
//
// Subscribers sharing a consumer group split the messages between them; the
// default group is "<service>-consumer", so each worker replica sees each
// message once. Delivery is at least once and handlers must be idempotent.
//
// Trace context travels in message metadata: Publish injects it and
// Subscribe restores it before calling the handler.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/logger"
)

const (
	defaultHandlerRetries = 3
	defaultRetryDelay     = time.Second
	shutdownTimeout       = 30 * time.Second
	outboxTopic           = "orderdesk_outbox"
	outboxConsumerGroup   = "orderdesk-outbox-relay"
)

// Options tunes an EventBus. Zero values take the defaults.
type Options struct {
	// ConsumerGroup defaults to "<service>-consumer".
	ConsumerGroup string
	// Outbox routes every publish through a durable queue that
	// StartForwarder relays to the real topics.
	Outbox bool
	// HandlerRetries is the number of handler attempts per message.
	HandlerRetries uint64
	RetryDelay     time.Duration
}

// EventBus publishes and consumes messages stored in PostgreSQL. Delivery
// relies on FOR UPDATE SKIP LOCKED, so replicas can poll concurrently.
type EventBus struct {
	db         *sql.DB
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	relay      *forwarder.Forwarder
	log        logger.Logger
	wlog       *watermillLogger
	opts       Options
	wg         sync.WaitGroup
}

// NewEventBus returns a bus that publishes straight to topics.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return New(cfg, log, Options{})
}

// NewEventBusWithForwarder returns a bus in outbox mode. Messages published
// inside a business transaction are committed with it and relayed once
// StartForwarder runs, so a crash after commit loses nothing.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return New(cfg, log, Options{Outbox: true})
}

// New opens a dedicated connection pool on cfg.DatabaseURL and creates the
// Watermill schema on first use.
func New(cfg *config.Config, log logger.Logger, opts Options) (*EventBus, error) {
	opts = opts.withDefaults(cfg.ServiceName)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	b := &EventBus{db: db, log: log, wlog: &watermillLogger{log: log}, opts: opts}

	pub, err := watermillsql.NewPublisher(db, publisherConfig(true), b.wlog)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	b.publisher = b.wrap(pub)

	b.subscriber, err = watermillsql.NewSubscriber(db, subscriberConfig(opts.ConsumerGroup), b.wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}
	return b, nil
}

func (o Options) withDefaults(service string) Options {
	if o.ConsumerGroup == "" {
		o.ConsumerGroup = service + "-consumer"
	}
	if o.HandlerRetries == 0 {
		o.HandlerRetries = defaultHandlerRetries
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = defaultRetryDelay
	}
	return o
}

func publisherConfig(autoInit bool) watermillsql.PublisherConfig {
	return watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: autoInit,
	}
}

func subscriberConfig(group string) watermillsql.SubscriberConfig {
	return watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}
}

// wrap envelopes messages for the outbox queue when outbox mode is on.
func (b *EventBus) wrap(pub message.Publisher) message.Publisher {
	if !b.opts.Outbox {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: outboxTopic})
}

// DB returns the bus's own connection pool.
func (b *EventBus) DB() *sql.DB {
	return b.db
}

// Ping checks the bus database connection.
func (b *EventBus) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, waits up to 30s for in-flight handlers and the
// relay, then releases the publisher and the pool.
func (b *EventBus) Close() error {
	var errs []error
	if err := b.subscriber.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close subscriber: %w", err))
	}
	if b.relay != nil {
		if err := b.relay.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: close forwarder: %w", err))
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		b.log.Error("events: timed out waiting for in-flight handlers")
	}

	if err := b.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close publisher: %w", err))
	}
	if err := b.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close db: %w", err))
	}
	return errors.Join(errs...)
}
