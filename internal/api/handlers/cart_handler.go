package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
)

// CartHandler handles the per-session service selection
type CartHandler struct {
	sessions *services.SessionService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *services.SessionService) *CartHandler {
	return &CartHandler{sessions: sessions}
}

type toggleItemRequest struct {
	ItemID string `json:"item_id"`
}

// GetCart handles GET /api/sessions/{sid}/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, newCartView(session))
}

// OpenCategory handles POST /api/sessions/{sid}/cart/{categoryId}/open
func (h *CartHandler) OpenCategory(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	category, err := h.sessions.OpenCategory(r.Context(), session, r.PathValue("categoryId"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"cart":     newCartView(session),
	})
}

// ToggleItem handles POST /api/sessions/{sid}/cart/{categoryId}/toggle
func (h *CartHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req toggleItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.ItemID == "" {
		respondWithError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	selected, err := h.sessions.ToggleItem(r.Context(), session, r.PathValue("categoryId"), req.ItemID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"item_id":  req.ItemID,
		"selected": selected,
		"cart":     newCartView(session),
	})
}

// Finalize handles POST /api/sessions/{sid}/cart/finalize
func (h *CartHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	if err := session.Selection.Finalize(r.Context(), session.Booking); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session.Booking.View())
}
