package events

import (
	"context"
	"errors"
	"fmt"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
)

var (
	errNotOutbox    = errors.New("events: bus is not in outbox mode")
	errRelayStarted = errors.New("events: forwarder already started")
)

// StartForwarder runs the outbox relay in the background and returns once it
// is consuming. The relay stops when ctx is canceled or the bus is closed.
func (b *EventBus) StartForwarder(ctx context.Context) error {
	if !b.opts.Outbox {
		return errNotOutbox
	}
	if b.relay != nil {
		return errRelayStarted
	}

	queue, err := watermillsql.NewSubscriber(b.db, subscriberConfig(outboxConsumerGroup), b.wlog)
	if err != nil {
		return fmt.Errorf("events: new outbox subscriber: %w", err)
	}
	target, err := watermillsql.NewPublisher(b.db, publisherConfig(true), b.wlog)
	if err != nil {
		_ = queue.Close()
		return fmt.Errorf("events: new outbox target publisher: %w", err)
	}

	relay, err := forwarder.NewForwarder(queue, target, b.wlog, forwarder.Config{ForwarderTopic: outboxTopic})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	b.relay = relay

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.log.InfoContext(ctx, "events: outbox relay started", "topic", outboxTopic)
		if err := relay.Run(ctx); err != nil {
			b.log.ErrorContext(ctx, "events: outbox relay stopped", "error", err)
			return
		}
		b.log.InfoContext(ctx, "events: outbox relay stopped")
	}()

	select {
	case <-relay.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for outbox relay: %w", ctx.Err())
	}
}
