package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sethvargo/go-retry"

	"github.com/ghuser/orderdesk/pkg/logger"
)

// Handler processes one message. A nil return acks it.
type Handler func(ctx context.Context, msg *message.Message) error

const errBuffer = 100

// Subscribe consumes topic in the background. Each message is handed to h
// with the publisher's trace restored; a failing handler is retried with
// exponential backoff and, once attempts run out, the message is nacked and
// the error sent on the returned channel. The channel is closed when the
// subscription ends and must be drained:
//
//	errCh, err := bus.Subscribe(ctx, topic, h)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "handler failed", "error", err) } }()
func (b *EventBus) Subscribe(ctx context.Context, topic string, h Handler) (<-chan error, error) {
	msgs, err := b.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBuffer)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer close(errCh)
		for msg := range msgs {
			msgCtx := extractTrace(ctx, msg)
			if err := handleWithRetry(msgCtx, msg, h, b.opts.HandlerRetries, b.opts.RetryDelay, b.log); err != nil {
				msg.Nack()
				select {
				case errCh <- fmt.Errorf("%s %s: %w", topic, msg.UUID, err):
				default:
					b.log.ErrorContext(msgCtx, "events: error channel full, dropping error", "error", err, "topic", topic)
				}
				continue
			}
			msg.Ack()
		}
	}()
	return errCh, nil
}

// handleWithRetry makes at most attempts calls to h, doubling delay between
// them. A canceled ctx stops the loop early.
func handleWithRetry(ctx context.Context, msg *message.Message, h Handler, attempts uint64, delay time.Duration, log logger.Logger) error {
	if attempts == 0 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(attempts-1, retry.NewExponential(delay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := h(ctx, msg)
		if err == nil {
			return nil
		}
		if uint64(attempt) < attempts {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"attempt", attempt,
				"max_attempts", attempts,
				"message_uuid", msg.UUID,
				"error", err,
			)
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return fmt.Errorf("events: handler failed after %d attempts: %w", attempt, err)
	}
	return nil
}
