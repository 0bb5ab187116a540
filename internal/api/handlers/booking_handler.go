package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// BookingService defines the booking operations the handler needs
type BookingService interface {
	List(ctx context.Context, view services.BookingView) ([]*entities.Booking, error)
	Get(ctx context.Context, id string) (*entities.Booking, error)
	ProceedToPayment(ctx context.Context, id string, notifier *services.Notifier) (*entities.Booking, error)
	Cancel(ctx context.Context, id string, notifier *services.Notifier) (*entities.Booking, error)
}

// BookingHandler serves the shared booking collection
type BookingHandler struct {
	bookings BookingService
	sessions *services.SessionService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings BookingService, sessions *services.SessionService) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		sessions: sessions,
	}
}

// ListBookings handles GET /api/bookings?view=all|pending|history
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	view, err := services.ParseBookingView(r.URL.Query().Get("view"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	bookings, err := h.bookings.List(r.Context(), view)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"view":     view,
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "booking ID is required")
		return
	}

	booking, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

// ProceedToPayment handles POST /api/sessions/{sid}/bookings/{id}/proceed
func (h *BookingHandler) ProceedToPayment(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	booking, err := h.bookings.ProceedToPayment(r.Context(), r.PathValue("id"), session.Notifier)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

// CancelBooking handles POST /api/sessions/{sid}/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	booking, err := h.bookings.Cancel(r.Context(), r.PathValue("id"), session.Notifier)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}
