package notifications

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
)

// LogSink writes every toast to the structured log
type LogSink struct{}

// NewLogSink creates a log sink
func NewLogSink() providers.NotificationSink {
	return LogSink{}
}

// Notify logs the toast at info, or warn for destructive toasts
func (LogSink) Notify(ctx context.Context, n entities.Notification) {
	logger := observability.LoggerFromContext(ctx)

	event := logger.Info()
	if n.Severity == entities.SeverityDestructive {
		event = logger.Warn()
	}
	event.
		Str("title", n.Title).
		Str("description", n.Description).
		Str("severity", string(n.Severity)).
		Msg("Toast")
}

// MultiSink delivers each toast to every sink in order
type MultiSink []providers.NotificationSink

// Notify forwards n to each sink
func (m MultiSink) Notify(ctx context.Context, n entities.Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(ctx, n)
		}
	}
}
