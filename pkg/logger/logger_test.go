package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ghuser/orderdesk/pkg/config"
)

func useTracer(t *testing.T) {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &m))
	return m
}

func TestNew_TagsServiceAndEnvironment(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info").With("service", "orderdesk", "env", config.EnvTesting)

	log.Info("started")

	e := lastEntry(t, &buf)
	assert.Equal(t, "orderdesk", e["service"])
	assert.Equal(t, config.EnvTesting, e["env"])
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Equal(t, "WARN", lastEntry(t, &buf)["level"])
}

func TestTraceFields(t *testing.T) {
	useTracer(t)
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.InfoContext(context.Background(), "no span")
	e := lastEntry(t, &buf)
	assert.NotContains(t, e, "trace_id")
	assert.NotContains(t, e, "span_id")

	ctx, parent := otel.Tracer("test").Start(context.Background(), "place-order")
	log.ErrorContext(ctx, "numbering conflict", "error", errors.New("unique violation"), "order_number", 17)
	parentEntry := lastEntry(t, &buf)

	childCtx, child := otel.Tracer("test").Start(ctx, "insert-details")
	log.InfoContext(childCtx, "details written")
	childEntry := lastEntry(t, &buf)
	child.End()
	parent.End()

	assert.Equal(t, "unique violation", parentEntry["error"])
	assert.EqualValues(t, 17, parentEntry["order_number"])
	require.Contains(t, parentEntry, "trace_id")
	assert.Equal(t, parentEntry["trace_id"], childEntry["trace_id"])
	assert.NotEqual(t, parentEntry["span_id"], childEntry["span_id"])
}

func TestMiddleware_LogsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	r := chi.NewRouter()
	r.Use(middleware.RequestID, Middleware(log))
	r.Get("/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/42", http.NoBody))

	e := lastEntry(t, &buf)
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, http.MethodGet, e["method"])
	assert.Equal(t, "/orders/{id}", e["route"])
	assert.Equal(t, "/orders/42", e["path"])
	assert.EqualValues(t, http.StatusOK, e["status"])
	assert.EqualValues(t, 2, e["bytes"])
	assert.Contains(t, e, "request_id")
}

func TestMiddleware_ServerErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	r := chi.NewRouter()
	r.Use(Middleware(log))
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	e := lastEntry(t, &buf)
	assert.Equal(t, "ERROR", e["level"])
	assert.EqualValues(t, http.StatusInternalServerError, e["status"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	e := lastEntry(t, &buf)
	assert.Equal(t, "panic recovered", e["msg"])
	assert.Equal(t, "kaboom", e["error"])
}

func TestRecovery_ReraisesAbort(t *testing.T) {
	h := Recovery(Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
