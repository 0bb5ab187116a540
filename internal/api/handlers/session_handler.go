package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// SessionHandler handles session lifecycle, preferences and toasts
type SessionHandler struct {
	sessions *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	Language string `json:"language"`
}

type cartView struct {
	CategoryID string                     `json:"category_id,omitempty"`
	Items      []entities.ServiceLineItem `json:"items"`
	Total      int64                      `json:"total"`
}

type sessionView struct {
	ID          string                   `json:"id"`
	Preferences services.Preferences     `json:"preferences"`
	Cart        cartView                 `json:"cart"`
	Booking     services.BookingFlowView `json:"booking"`
	Emergency   services.EmergencyView   `json:"emergency"`
	Toasts      int                      `json:"pending_notifications"`
}

func newCartView(session *services.Session) cartView {
	return cartView{
		CategoryID: session.Selection.CategoryID(),
		Items:      session.Selection.Items(),
		Total:      session.Selection.Total(),
	}
}

func newSessionView(session *services.Session) sessionView {
	return sessionView{
		ID:          session.ID,
		Preferences: session.Preferences(),
		Cart:        newCartView(session),
		Booking:     session.Booking.View(),
		Emergency:   session.Emergency.View(),
		Toasts:      session.Toasts.Len(),
	}
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session := h.sessions.Create(r.Context(), req.Language)
	respondWithJSON(w, http.StatusCreated, newSessionView(session))
}

// GetSession handles GET /api/sessions/{sid}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionView(session))
}

// UpdatePreferences handles PUT /api/sessions/{sid}/preferences
func (h *SessionHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var update services.PreferencesUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	prefs, err := h.sessions.UpdatePreferences(r.Context(), r.PathValue("sid"), update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, prefs)
}

// DrainNotifications handles GET /api/sessions/{sid}/notifications
func (h *SessionHandler) DrainNotifications(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	toasts := session.Toasts.Drain()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": toasts,
		"count":         len(toasts),
	})
}
