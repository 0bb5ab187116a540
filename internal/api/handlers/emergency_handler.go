package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
)

// EmergencyHandler drives a session's emergency nurse search
type EmergencyHandler struct {
	sessions *services.SessionService
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(sessions *services.SessionService) *EmergencyHandler {
	return &EmergencyHandler{sessions: sessions}
}

type hireRequest struct {
	NurseID string `json:"nurse_id"`
}

// Start handles POST /api/sessions/{sid}/emergency
func (h *EmergencyHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	if err := session.Emergency.Start(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, session.Emergency.View())
}

// Get handles GET /api/sessions/{sid}/emergency
func (h *EmergencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, session.Emergency.View())
}

// Retry handles POST /api/sessions/{sid}/emergency/retry
func (h *EmergencyHandler) Retry(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	if err := session.Emergency.Retry(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, session.Emergency.View())
}

// RetryLocation handles POST /api/sessions/{sid}/emergency/retry-location
func (h *EmergencyHandler) RetryLocation(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	if err := session.Emergency.RetryLocation(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, session.Emergency.View())
}

// Hire handles POST /api/sessions/{sid}/emergency/hire
func (h *EmergencyHandler) Hire(w http.ResponseWriter, r *http.Request) {
	session, r, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req hireRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.NurseID == "" {
		respondWithError(w, http.StatusBadRequest, "nurse_id is required")
		return
	}

	result, err := session.Emergency.Hire(r.Context(), req.NurseID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Stop handles DELETE /api/sessions/{sid}/emergency
func (h *EmergencyHandler) Stop(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	session.Emergency.Stop()
	w.WriteHeader(http.StatusNoContent)
}
