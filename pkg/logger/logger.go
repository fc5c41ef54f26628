package logger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/httpx"
)

// Logger is the project-wide logging interface. Implementations must provide
// context-aware and plain logging methods plus With for structured attributes.
// The concrete slogLogger embeds *slog.Logger so all standard slog features
// (Log, LogAttrs, Enabled, Handler, etc.) are available on the concrete type.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	// With returns a new Logger with the given key-value pairs bound as attributes.
	With(args ...any) Logger
	// ToSlog returns the underlying *slog.Logger for third-party libraries.
	ToSlog() *slog.Logger
}

// New returns a Logger writing JSON to stdout, tagged with the service name
// and environment from cfg.
func New(cfg *config.Config) Logger {
	return NewWithWriter(os.Stdout, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.Environment,
	)
}

// NewWithWriter returns a Logger backed by a trace-aware JSON slog handler
// writing to w. trace_id, span_id and request_id are injected from context.
func NewWithWriter(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return &slogLogger{Logger: slog.New(&traceHandler{slog.NewJSONHandler(w, opts)})}
}

// Discard returns a Logger that drops everything. Intended for tests.
func Discard() Logger {
	return NewWithWriter(io.Discard, "error")
}

type slogLogger struct {
	*slog.Logger
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{Logger: l.Logger.With(args...)}
}

func (l *slogLogger) ToSlog() *slog.Logger {
	return l.Logger
}

// traceHandler wraps a slog.Handler and injects OTel trace_id, span_id,
// and chi request_id from context into every log record.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		sc := span.SpanContext()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	if requestID := middleware.GetReqID(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{h.Handler.WithGroup(name)}
}

// Middleware returns a chi-compatible middleware that logs each request once
// it completes. The matched route pattern is logged next to the raw path so
// requests for different ids aggregate under one route.
func Middleware(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern(r),
				"status", status,
				"bytes", ww.BytesWritten(),
				"latency_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if status >= http.StatusInternalServerError {
				log.ErrorContext(r.Context(), "request", args...)
				return
			}
			log.InfoContext(r.Context(), "request", args...)
		})
	}
}

// Recovery turns a panic into a logged 500 with the API's JSON error body.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.ErrorContext(r.Context(), "panic recovered",
						"error", err,
						"stack", string(debug.Stack()),
					)
					httpx.JSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
