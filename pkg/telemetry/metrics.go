package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/orderdesk"

// Metrics holds the domain instruments. A nil *Metrics is valid and records
// nothing, so tests and tools can skip telemetry setup.
type Metrics struct {
	ordersPlaced     metric.Int64Counter
	numberingRetries metric.Int64Counter
	itemCacheLookups metric.Int64Counter
}

// NewMetrics registers the domain instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	ordersPlaced, err := meter.Int64Counter("orderdesk.orders.placed",
		metric.WithDescription("Orders committed, by event kind"),
		metric.WithUnit("{order}"))
	if err != nil {
		return nil, fmt.Errorf("orders placed counter: %w", err)
	}
	numberingRetries, err := meter.Int64Counter("orderdesk.numbering.retries",
		metric.WithDescription("Transactions replayed after losing a sequential number race"),
		metric.WithUnit("{retry}"))
	if err != nil {
		return nil, fmt.Errorf("numbering retries counter: %w", err)
	}
	itemCacheLookups, err := meter.Int64Counter("orderdesk.item_cache.lookups",
		metric.WithDescription("Item cache reads, by result"),
		metric.WithUnit("{lookup}"))
	if err != nil {
		return nil, fmt.Errorf("item cache counter: %w", err)
	}

	return &Metrics{
		ordersPlaced:     ordersPlaced,
		numberingRetries: numberingRetries,
		itemCacheLookups: itemCacheLookups,
	}, nil
}

// OrderPlaced counts a committed order event; kind is "placed" or "updated".
func (m *Metrics) OrderPlaced(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// NumberingRetry counts one replay of a numbering transaction.
func (m *Metrics) NumberingRetry(ctx context.Context, sequence string) {
	if m == nil {
		return
	}
	m.numberingRetries.Add(ctx, 1, metric.WithAttributes(attribute.String("sequence", sequence)))
}

// ItemCacheLookup counts an item cache read.
func (m *Metrics) ItemCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.itemCacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
