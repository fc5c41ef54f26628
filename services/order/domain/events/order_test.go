package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/events"
)

func TestOrderEvent_JSONFieldNames(t *testing.T) {
	evt := events.OrderEvent{
		EventID:     uuid.New(),
		Version:     events.OrderEventVersion,
		OrderID:     3,
		OrderNumber: 17,
		PersonID:    1,
		Total:       decimal.RequireFromString("20.00"),
		LineCount:   1,
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "order_id", "order_number", "person_id", "total", "line_count", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Distinct(t *testing.T) {
	if events.TopicOrderPlaced == events.TopicOrderUpdated {
		t.Fatal("placed and updated must use different topics")
	}
}
