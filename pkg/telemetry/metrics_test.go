package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string][]metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string][]metricdata.DataPoint[int64]{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				out[m.Name] = sum.DataPoints
			}
		}
	}
	return out
}

func valueFor(points []metricdata.DataPoint[int64], key, want string) int64 {
	for _, p := range points {
		if v, ok := p.Attributes.Value(attribute.Key(key)); ok && v.AsString() == want {
			return p.Value
		}
	}
	return 0
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	ctx := context.Background()
	m.OrderPlaced(ctx, "placed")
	m.OrderPlaced(ctx, "placed")
	m.OrderPlaced(ctx, "updated")
	m.NumberingRetry(ctx, "order")
	m.ItemCacheLookup(ctx, true)
	m.ItemCacheLookup(ctx, false)
	m.ItemCacheLookup(ctx, false)

	sums := collectSums(t, reader)
	if got := valueFor(sums["orderdesk.orders.placed"], "kind", "placed"); got != 2 {
		t.Errorf("orders placed: got %d, want 2", got)
	}
	if got := valueFor(sums["orderdesk.orders.placed"], "kind", "updated"); got != 1 {
		t.Errorf("orders updated: got %d, want 1", got)
	}
	if got := valueFor(sums["orderdesk.numbering.retries"], "sequence", "order"); got != 1 {
		t.Errorf("numbering retries: got %d, want 1", got)
	}
	if got := valueFor(sums["orderdesk.item_cache.lookups"], "result", "miss"); got != 2 {
		t.Errorf("cache misses: got %d, want 2", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.OrderPlaced(ctx, "placed")
	m.NumberingRetry(ctx, "invoice")
	m.ItemCacheLookup(ctx, true)
}
