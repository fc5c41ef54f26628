package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/ghuser/orderdesk/pkg/logger"
)

// watermillLogger routes Watermill's internal logs through logger.Logger.
// Trace level is folded into debug.
type watermillLogger struct{ log logger.Logger }

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.log.Error(msg, append(args(fields), "error", err)...)
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.log.Info(msg, args(fields)...)
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.log.Debug(msg, args(fields)...)
}

func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.log.Debug(msg, args(fields)...)
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &watermillLogger{log: l.log.With(args(fields)...)}
}

func args(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
