package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// CatalogService defines the catalog reads the handler needs
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error)
	GetCategory(ctx context.Context, id string) (*entities.ServiceCategory, error)
	ListNurses(ctx context.Context) ([]*entities.NurseRecord, error)
	AvailableNursesByDistance(ctx context.Context) ([]*entities.NurseRecord, error)
}

// CatalogHandler serves the service categories, nurse pool and distance helper
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategory handles GET /api/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "category ID is required")
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

// ListNurses handles GET /api/nurses?available=true
func (h *CatalogHandler) ListNurses(w http.ResponseWriter, r *http.Request) {
	var (
		nurses []*entities.NurseRecord
		err    error
	)
	if available, _ := strconv.ParseBool(r.URL.Query().Get("available")); available {
		nurses, err = h.service.AvailableNursesByDistance(r.Context())
	} else {
		nurses, err = h.service.ListNurses(r.Context())
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"nurses": nurses,
		"count":  len(nurses),
	})
}

// Distance handles GET /api/distance?from=lat,lon&to=lat,lon
func (h *CatalogHandler) Distance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromLat, fromLon, ok := parseLatLon(query.Get("from"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "from must be lat,lon")
		return
	}
	toLat, toLon, ok := parseLatLon(query.Get("to"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "to must be lat,lon")
		return
	}

	distance := services.HaversineDistance(fromLat, fromLon, toLat, toLon)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"distance_km":     distance,
		"arrival_minutes": services.EstimatedArrivalMinutes(distance),
	})
}

func parseLatLon(s string) (float64, float64, bool) {
	latStr, lonStr, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}
