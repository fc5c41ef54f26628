package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set by NewMessage.
const (
	MetaEventID      = "event_id"
	MetaEventVersion = "event_version"
)

// NewMessage marshals payload as the JSON body of a message tagged with the
// domain event id and schema version.
func NewMessage(eventID string, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set(MetaEventID, eventID)
	msg.Metadata.Set(MetaEventVersion, strconv.Itoa(version))
	return msg, nil
}

// Publish sends msgs to topic outside any transaction.
func (b *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	injectTrace(ctx, msgs)
	if err := b.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishTx writes msgs through tx; they become visible only if tx commits.
func (b *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error {
	pub, err := b.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	injectTrace(ctx, msgs)
	if err := pub.Publish(topic, msgs...); err != nil {
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

// NewTxPublisher returns a publisher bound to tx. The schema must already
// exist, which New guarantees.
func (b *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := watermillsql.NewPublisher(tx, publisherConfig(false), b.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	return b.wrap(pub), nil
}

func injectTrace(ctx context.Context, msgs []*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Metadata))
}
