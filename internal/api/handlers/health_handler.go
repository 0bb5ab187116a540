package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and the state of optional dependencies
type HealthHandler struct {
	redis    Pinger
	sessions interface{ Count() int }
	streams  interface{ GetClientCount() int }
}

// NewHealthHandler creates a health handler. redis may be nil when Redis is disabled.
func NewHealthHandler(redis Pinger, sessions interface{ Count() int }, streams interface{ GetClientCount() int }) *HealthHandler {
	return &HealthHandler{
		redis:    redis,
		sessions: sessions,
		streams:  streams,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
	}
	if h.sessions != nil {
		status["sessions"] = h.sessions.Count()
	}
	if h.streams != nil {
		status["stream_clients"] = h.streams.GetClientCount()
	}

	code := http.StatusOK
	if h.redis == nil {
		status["redis"] = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx); err != nil {
			status["redis"] = "unreachable"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			status["redis"] = "ok"
		}
	}

	respondWithJSON(w, code, status)
}
