package repositories

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// BookingRepository defines the interface for the booking collection
type BookingRepository interface {
	// Create appends a new booking; the ID must not already exist
	Create(ctx context.Context, booking *entities.Booking) error

	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*entities.Booking, error)

	// UpdateStatus moves a pending booking to status and returns the updated
	// booking together with its previous status. Bookings that are not
	// pending are left untouched.
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (*entities.Booking, entities.BookingStatus, error)

	// List retrieves bookings, newest first
	List(ctx context.Context, filter BookingFilter) ([]*entities.Booking, error)
}

// BookingFilter defines filters for listing bookings. The zero value matches everything.
type BookingFilter struct {
	Status    entities.BookingStatus
	NotStatus entities.BookingStatus
}

// Matches reports whether b passes the filter.
func (f BookingFilter) Matches(b *entities.Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.NotStatus != "" && b.Status == f.NotStatus {
		return false
	}
	return true
}
