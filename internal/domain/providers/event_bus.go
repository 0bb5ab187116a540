package providers

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to booking events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.BookingEvent) error

	// Subscribe subscribes to events on a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.BookingEvent, error)

	// Unsubscribe drops every subscriber of a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelBookingUpdates carries every booking event
	EventChannelBookingUpdates = "booking:updates"

	// EventChannelBookingPrefix is the prefix for booking-specific channels
	EventChannelBookingPrefix = "booking:"
)

// GetBookingChannel returns the channel name for a specific booking
func GetBookingChannel(bookingID string) string {
	return EventChannelBookingPrefix + bookingID
}
