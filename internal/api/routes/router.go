package routes

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
	"github.com/zatekoja/nursecare/backend/internal/api/middleware"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
)

// Handlers groups the route handlers the router serves
type Handlers struct {
	Health      *handlers.HealthHandler
	Catalog     *handlers.CatalogHandler
	Session     *handlers.SessionHandler
	Cart        *handlers.CartHandler
	BookingFlow *handlers.BookingFlowHandler
	Booking     *handlers.BookingHandler
	Emergency   *handlers.EmergencyHandler
	Location    *handlers.LocationHandler
	Translation *handlers.TranslationHandler
	SSE         *handlers.SSEHandler
}

// Router holds all route handlers
type Router struct {
	mux      *http.ServeMux
	handlers Handlers

	cacheMiddleware *middleware.CacheMiddleware
	rateLimiter     *middleware.RateLimiter
	metrics         *observability.Metrics
	allowedOrigins  []string
}

// NewRouter creates a new router. cacheMiddleware and rateLimiter may be nil.
func NewRouter(
	h Handlers,
	cacheMiddleware *middleware.CacheMiddleware,
	rateLimiter *middleware.RateLimiter,
	metrics *observability.Metrics,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		handlers:        h,
		cacheMiddleware: cacheMiddleware,
		rateLimiter:     rateLimiter,
		metrics:         metrics,
		allowedOrigins:  allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	h := r.handlers

	r.mux.HandleFunc("GET /health", h.Health.Health)

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/categories", h.Catalog.ListCategories)
	r.mux.HandleFunc("GET /api/categories/{id}", h.Catalog.GetCategory)
	r.mux.HandleFunc("GET /api/nurses", h.Catalog.ListNurses)
	r.mux.HandleFunc("GET /api/distance", h.Catalog.Distance)
	r.mux.HandleFunc("GET /api/translations", h.Translation.GetTranslations)

	// Session endpoints
	r.mux.HandleFunc("POST /api/sessions", h.Session.CreateSession)
	r.mux.HandleFunc("GET /api/sessions/{sid}", h.Session.GetSession)
	r.mux.HandleFunc("PUT /api/sessions/{sid}/preferences", h.Session.UpdatePreferences)
	r.mux.HandleFunc("GET /api/sessions/{sid}/notifications", h.Session.DrainNotifications)

	// Cart endpoints
	r.mux.HandleFunc("GET /api/sessions/{sid}/cart", h.Cart.GetCart)
	r.mux.HandleFunc("POST /api/sessions/{sid}/cart/finalize", h.Cart.Finalize)
	r.mux.HandleFunc("POST /api/sessions/{sid}/cart/{categoryId}/open", h.Cart.OpenCategory)
	r.mux.HandleFunc("POST /api/sessions/{sid}/cart/{categoryId}/toggle", h.Cart.ToggleItem)

	// Booking flow endpoints
	r.mux.HandleFunc("GET /api/sessions/{sid}/booking", h.BookingFlow.GetFlow)
	r.mux.HandleFunc("POST /api/sessions/{sid}/booking/details", h.BookingFlow.ProceedToDetails)
	r.mux.HandleFunc("POST /api/sessions/{sid}/booking/back", h.BookingFlow.Back)
	r.mux.HandleFunc("PUT /api/sessions/{sid}/booking/draft", h.BookingFlow.UpdateDraft)
	r.mux.HandleFunc("POST /api/sessions/{sid}/booking/use-location", h.BookingFlow.UseCurrentLocation)
	r.mux.HandleFunc("DELETE /api/sessions/{sid}/booking/items/{itemId}", h.BookingFlow.RemoveItem)
	r.mux.HandleFunc("POST /api/sessions/{sid}/booking/confirm", h.BookingFlow.Confirm)
	r.mux.HandleFunc("POST /api/sessions/{sid}/booking/close", h.BookingFlow.Close)

	// Booking collection endpoints
	r.mux.HandleFunc("GET /api/bookings", h.Booking.ListBookings)
	r.mux.HandleFunc("GET /api/bookings/{id}", h.Booking.GetBooking)
	r.mux.HandleFunc("POST /api/sessions/{sid}/bookings/{id}/proceed", h.Booking.ProceedToPayment)
	r.mux.HandleFunc("POST /api/sessions/{sid}/bookings/{id}/cancel", h.Booking.CancelBooking)

	// Emergency endpoints
	r.mux.HandleFunc("POST /api/sessions/{sid}/emergency", h.Emergency.Start)
	r.mux.HandleFunc("GET /api/sessions/{sid}/emergency", h.Emergency.Get)
	r.mux.HandleFunc("DELETE /api/sessions/{sid}/emergency", h.Emergency.Stop)
	r.mux.HandleFunc("POST /api/sessions/{sid}/emergency/retry", h.Emergency.Retry)
	r.mux.HandleFunc("POST /api/sessions/{sid}/emergency/retry-location", h.Emergency.RetryLocation)
	r.mux.HandleFunc("POST /api/sessions/{sid}/emergency/hire", h.Emergency.Hire)

	// Location endpoints
	r.mux.HandleFunc("GET /api/sessions/{sid}/location", h.Location.GetLocation)
	r.mux.HandleFunc("POST /api/sessions/{sid}/location", h.Location.PushPosition)
	r.mux.HandleFunc("POST /api/sessions/{sid}/location/permission", h.Location.SetPermission)

	// Streaming endpoints
	if h.SSE != nil {
		r.mux.HandleFunc("GET /api/stream/bookings", h.SSE.StreamBookingUpdates)
		r.mux.HandleFunc("GET /api/stream/bookings/{id}", h.SSE.StreamBooking)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.rateLimiter != nil {
		handler = r.rateLimiter.Middleware(handler)
	}

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
