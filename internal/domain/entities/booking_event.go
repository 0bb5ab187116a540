package entities

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventType represents the type of booking event
type BookingEventType string

const (
	BookingEventCreated       BookingEventType = "booking_created"
	BookingEventStatusChanged BookingEventType = "booking_status_changed"
)

// BookingEvent is published whenever the booking collection changes
type BookingEvent struct {
	ID             string           `json:"id"`
	EventType      BookingEventType `json:"event_type"`
	BookingID      string           `json:"booking_id"`
	Status         BookingStatus    `json:"status"`
	PreviousStatus BookingStatus    `json:"previous_status,omitempty"`
	Price          int64            `json:"price"`
	Timestamp      time.Time        `json:"timestamp"`
}

// NewBookingEvent creates a new booking event
func NewBookingEvent(eventType BookingEventType, booking *Booking, previous BookingStatus) *BookingEvent {
	return &BookingEvent{
		ID:             uuid.NewString(),
		EventType:      eventType,
		BookingID:      booking.ID,
		Status:         booking.Status,
		PreviousStatus: previous,
		Price:          booking.Price,
		Timestamp:      time.Now(),
	}
}
