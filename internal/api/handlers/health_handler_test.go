package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

type stubCounter int

func (c stubCounter) Count() int          { return int(c) }
func (c stubCounter) GetClientCount() int { return int(c) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		redis          handlers.Pinger
		expectedStatus int
		expectedRedis  string
		expectedHealth string
	}{
		{name: "redis disabled", redis: nil, expectedStatus: http.StatusOK, expectedRedis: "disabled", expectedHealth: "ok"},
		{name: "redis reachable", redis: stubPinger{}, expectedStatus: http.StatusOK, expectedRedis: "ok", expectedHealth: "ok"},
		{name: "redis down", redis: stubPinger{err: errors.New("connection refused")}, expectedStatus: http.StatusServiceUnavailable, expectedRedis: "unreachable", expectedHealth: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(tt.redis, stubCounter(3), stubCounter(1))

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.expectedHealth, body["status"])
			assert.Equal(t, tt.expectedRedis, body["redis"])
			assert.Equal(t, float64(3), body["sessions"])
			assert.Equal(t, float64(1), body["stream_clients"])
		})
	}
}
