package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// BookingFlowHandler drives a session's booking flow
type BookingFlowHandler struct {
	sessions *services.SessionService
}

// NewBookingFlowHandler creates a new booking flow handler
func NewBookingFlowHandler(sessions *services.SessionService) *BookingFlowHandler {
	return &BookingFlowHandler{sessions: sessions}
}

// GetFlow handles GET /api/sessions/{sid}/booking
func (h *BookingFlowHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, session.Booking.View())
}

// ProceedToDetails handles POST /api/sessions/{sid}/booking/details
func (h *BookingFlowHandler) ProceedToDetails(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	h.respond(w, session, session.Booking.ProceedToDetails(r.Context()))
}

// Back handles POST /api/sessions/{sid}/booking/back
func (h *BookingFlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	h.respond(w, session, session.Booking.Back(r.Context()))
}

// UpdateDraft handles PUT /api/sessions/{sid}/booking/draft
func (h *BookingFlowHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var draft entities.BookingDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	h.respond(w, session, session.Booking.UpdateDraft(r.Context(), draft))
}

// UseCurrentLocation handles POST /api/sessions/{sid}/booking/use-location
func (h *BookingFlowHandler) UseCurrentLocation(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	h.respond(w, session, session.Booking.UseCurrentLocation(r.Context()))
}

// RemoveItem handles DELETE /api/sessions/{sid}/booking/items/{itemId}
func (h *BookingFlowHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	h.respond(w, session, session.Booking.RemoveItem(r.Context(), r.PathValue("itemId")))
}

// Confirm handles POST /api/sessions/{sid}/booking/confirm
func (h *BookingFlowHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	booking, err := session.Booking.Confirm(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, booking)
}

// Close handles POST /api/sessions/{sid}/booking/close
func (h *BookingFlowHandler) Close(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	session.Booking.Close(r.Context())
	respondWithJSON(w, http.StatusOK, session.Booking.View())
}

func (h *BookingFlowHandler) respond(w http.ResponseWriter, session *services.Session, err error) {
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session.Booking.View())
}
