package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

// LocationHandler relays the browser's geolocation to a session's provider
type LocationHandler struct {
	sessions *services.SessionService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(sessions *services.SessionService) *LocationHandler {
	return &LocationHandler{sessions: sessions}
}

type permissionRequest struct {
	Granted *bool `json:"granted"`
}

// GetLocation handles GET /api/sessions/{sid}/location
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	current := session.Location.Current()
	if current == nil {
		respondWithError(w, http.StatusNotFound, "location not available")
		return
	}
	respondWithJSON(w, http.StatusOK, current)
}

// PushPosition handles POST /api/sessions/{sid}/location
func (h *LocationHandler) PushPosition(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var coords providers.Coordinates
	if err := decodeJSON(r, &coords); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if coords.Latitude < -90 || coords.Latitude > 90 || coords.Longitude < -180 || coords.Longitude > 180 {
		respondWithError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	feed, ok := session.LocationFeed()
	if !ok {
		respondWithError(w, http.StatusConflict, "location provider does not accept client positions")
		return
	}
	feed.Push(coords)
	w.WriteHeader(http.StatusAccepted)
}

// SetPermission handles POST /api/sessions/{sid}/location/permission
func (h *LocationHandler) SetPermission(w http.ResponseWriter, r *http.Request) {
	session, _, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req permissionRequest
	if err := decodeJSON(r, &req); err != nil || req.Granted == nil {
		respondWithError(w, http.StatusBadRequest, "granted is required")
		return
	}

	feed, ok := session.LocationFeed()
	if !ok {
		respondWithError(w, http.StatusConflict, "location provider does not accept client decisions")
		return
	}
	feed.SetPermission(*req.Granted)
	respondWithJSON(w, http.StatusOK, map[string]bool{"granted": *req.Granted})
}
