package providers

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// NotificationSink receives user-visible toasts. Delivery is fire-and-forget.
type NotificationSink interface {
	Notify(ctx context.Context, notification entities.Notification)
}

// NotificationSinkFunc adapts a function to NotificationSink
type NotificationSinkFunc func(ctx context.Context, notification entities.Notification)

// Notify calls f.
func (f NotificationSinkFunc) Notify(ctx context.Context, notification entities.Notification) {
	f(ctx, notification)
}
