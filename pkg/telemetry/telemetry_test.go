package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/ghuser/orderdesk/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:      "orderdesk-test",
		ServiceVersion:   "test",
		Environment:      config.EnvTesting,
		TraceSampleRatio: 1,
	}
}

func TestSetup_WithoutOTLPEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, tel.Metrics)
	require.NotNil(t, tel.Handler)

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_MetricsEndpointExposesDomainCounters(t *testing.T) {
	tel, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	tel.Metrics.OrderPlaced(context.Background(), "placed")

	rr := httptest.NewRecorder()
	tel.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}
