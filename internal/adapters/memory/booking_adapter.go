package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// BookingAdapter is the process-lifetime booking collection.
// Bookings are kept newest first and are never deleted.
type BookingAdapter struct {
	mu       sync.RWMutex
	bookings []*entities.Booking
	index    map[string]*entities.Booking
	now      func() time.Time
}

// NewBookingAdapter creates a booking collection holding seed, in the given order
func NewBookingAdapter(seed []entities.Booking) *BookingAdapter {
	a := &BookingAdapter{
		index: make(map[string]*entities.Booking),
		now:   time.Now,
	}
	for i := range seed {
		b := cloneBooking(&seed[i])
		if _, dup := a.index[b.ID]; dup {
			continue
		}
		a.bookings = append(a.bookings, b)
		a.index[b.ID] = b
	}
	return a
}

var _ repositories.BookingRepository = (*BookingAdapter)(nil)

// Create prepends a booking to the collection
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	if booking.ID == "" {
		return apperrors.NewValidationError("booking id is required")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.index[booking.ID]; exists {
		return apperrors.NewConflictError("booking " + booking.ID + " already exists")
	}

	now := a.now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	stored := cloneBooking(booking)
	a.bookings = append([]*entities.Booking{stored}, a.bookings...)
	a.index[stored.ID] = stored
	return nil
}

// GetByID retrieves a booking by ID
func (a *BookingAdapter) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	b, ok := a.index[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("booking not found")
	}
	return cloneBooking(b), nil
}

// UpdateStatus moves a pending booking to status
func (a *BookingAdapter) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (*entities.Booking, entities.BookingStatus, error) {
	if !status.IsTerminal() {
		return nil, "", apperrors.NewValidationError("status must be processed or cancelled")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.index[id]
	if !ok {
		return nil, "", apperrors.NewNotFoundError("booking not found")
	}
	if b.Status.IsTerminal() {
		return nil, b.Status, apperrors.NewConflictError("booking " + id + " is already " + string(b.Status))
	}

	previous := b.Status
	b.Status = status
	b.UpdatedAt = a.now()
	return cloneBooking(b), previous, nil
}

// List retrieves bookings matching filter, newest first
func (a *BookingAdapter) List(ctx context.Context, filter repositories.BookingFilter) ([]*entities.Booking, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*entities.Booking, 0, len(a.bookings))
	for _, b := range a.bookings {
		if filter.Matches(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func cloneBooking(b *entities.Booking) *entities.Booking {
	cp := *b
	cp.Services = append([]string(nil), b.Services...)
	return &cp
}
