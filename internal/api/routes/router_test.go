package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/adapters/cache"
	"github.com/zatekoja/nursecare/backend/internal/adapters/catalog"
	"github.com/zatekoja/nursecare/backend/internal/adapters/events"
	"github.com/zatekoja/nursecare/backend/internal/adapters/memory"
	"github.com/zatekoja/nursecare/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
	"github.com/zatekoja/nursecare/backend/internal/api/middleware"
	"github.com/zatekoja/nursecare/backend/internal/api/routes"
	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
	"github.com/zatekoja/nursecare/backend/pkg/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	bus := events.NewMemoryEventBus()
	catalogService := services.NewCatalogService(catalog.NewStaticCatalogAdapter())
	bookingService := services.NewBookingService(memory.NewBookingAdapter(catalog.DemoBookings()), bus, nil)
	translator := services.NewTranslator()
	factory := geolocation.NewFactory(config.GeolocationConfig{Provider: "mock", DefaultLat: 23.8103, DefaultLon: 90.4125})
	sessions := services.NewSessionService(
		catalogService, bookingService, translator,
		clock.NewManual(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)),
		nil,
		func() providers.LocationProvider { return factory() },
		nil,
		services.SessionConfig{LocationTimeout: time.Second, ConfirmationDelay: 3 * time.Second},
	)
	sse := handlers.NewSSEHandler(bus)

	router := routes.NewRouter(
		routes.Handlers{
			Health:      handlers.NewHealthHandler(nil, sessions, sse),
			Catalog:     handlers.NewCatalogHandler(catalogService),
			Session:     handlers.NewSessionHandler(sessions),
			Cart:        handlers.NewCartHandler(sessions),
			BookingFlow: handlers.NewBookingFlowHandler(sessions),
			Booking:     handlers.NewBookingHandler(bookingService, sessions),
			Emergency:   handlers.NewEmergencyHandler(sessions),
			Location:    handlers.NewLocationHandler(sessions),
			Translation: handlers.NewTranslationHandler(translator),
			SSE:         sse,
		},
		middleware.NewCacheMiddleware(cache.NewMemoryAdapter(), nil),
		middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100}, nil),
		nil,
		[]string{"https://nurse.example"},
	)
	return router.SetupRoutes()
}

func do(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Origin", "https://nurse.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestRouter_Health(t *testing.T) {
	handler := newTestServer(t)

	w, body := do(t, handler, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "disabled", body["redis"])
	assert.Equal(t, "https://nurse.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CatalogIsCached(t *testing.T) {
	handler := newTestServer(t)

	w, body := do(t, handler, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, float64(9), body["count"])

	w, _ = do(t, handler, http.MethodGet, "/api/categories", "")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "https://nurse.example", w.Header().Get("Access-Control-Allow-Origin"))

	w, body = do(t, handler, http.MethodGet, "/api/categories/home-care", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home-care", body["id"])
}

func TestRouter_SessionRoutes(t *testing.T) {
	handler := newTestServer(t)

	w, body := do(t, handler, http.MethodPost, "/api/sessions", `{"language":"bn"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	sid := body["id"].(string)
	base := "/api/sessions/" + sid

	w, body = do(t, handler, http.MethodPost, base+"/cart/home-care/toggle", `{"item_id":"injection"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["selected"])

	w, body = do(t, handler, http.MethodPost, base+"/cart/finalize", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), body["total"])

	w, _ = do(t, handler, http.MethodDelete, base+"/booking/items/injection", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, handler, http.MethodGet, base+"/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	w, _ = do(t, handler, http.MethodGet, "/api/sessions/missing/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, handler, http.MethodPatch, base+"/cart", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
