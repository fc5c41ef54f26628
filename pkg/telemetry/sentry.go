package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/orderdesk/pkg/config"
)

const sentryFlushTimeout = 2 * time.Second

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func sentryOptions(cfg *config.Config) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName,
		TracesSampleRate: cfg.TraceSampleRatio,
		BeforeSend:       dropCanceled,
	}
}

// dropCanceled discards events for requests the client abandoned.
func dropCanceled(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if hint != nil && (errors.Is(hint.OriginalException, context.Canceled) ||
		errors.Is(hint.OriginalException, context.DeadlineExceeded)) {
		return nil
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware captures panics and re-panics so the outer Recovery
// middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}
