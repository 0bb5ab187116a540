package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/adapters/events"
	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

func runStream(t *testing.T, serve func(http.ResponseWriter, *http.Request), req *http.Request, during func()) *httptest.ResponseRecorder {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		serve(w, req)
		close(done)
	}()

	// Wait for the subscription to be registered
	time.Sleep(100 * time.Millisecond)
	during()
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not exit after cancel")
	}
	return w
}

func TestSSEHandler_StreamBookingUpdates(t *testing.T) {
	bus := events.NewMemoryEventBus()
	handler := handlers.NewSSEHandler(bus)

	booking := &entities.Booking{ID: "BK654321", Status: entities.BookingStatusPending, Price: 500}

	req := httptest.NewRequest(http.MethodGet, "/api/stream/bookings", nil)
	w := runStream(t, handler.StreamBookingUpdates, req, func() {
		assert.Equal(t, 1, handler.GetClientCount())
		event := entities.NewBookingEvent(entities.BookingEventCreated, booking, "")
		require.NoError(t, bus.Publish(context.Background(), providers.EventChannelBookingUpdates, event))
	})

	result := w.Result()
	assert.Equal(t, "text/event-stream", result.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", result.Header.Get("Cache-Control"))

	body := w.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: booking_created")
	assert.Contains(t, body, `"booking_id":"BK654321"`)
	assert.Equal(t, 0, handler.GetClientCount())
}

func TestSSEHandler_StreamBooking(t *testing.T) {
	bus := events.NewMemoryEventBus()
	handler := handlers.NewSSEHandler(bus)

	t.Run("only events for the booking", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/stream/bookings/BK123456", nil)
		req.SetPathValue("id", "BK123456")

		w := runStream(t, handler.StreamBooking, req, func() {
			cancelled := &entities.Booking{ID: "BK123456", Status: entities.BookingStatusCancelled}
			other := &entities.Booking{ID: "BK999999", Status: entities.BookingStatusProcessed}
			bus.Publish(context.Background(), providers.GetBookingChannel("BK999999"),
				entities.NewBookingEvent(entities.BookingEventStatusChanged, other, entities.BookingStatusPending))
			bus.Publish(context.Background(), providers.GetBookingChannel("BK123456"),
				entities.NewBookingEvent(entities.BookingEventStatusChanged, cancelled, entities.BookingStatusPending))
		})

		body := w.Body.String()
		assert.Contains(t, body, "event: booking_status_changed")
		assert.Contains(t, body, `"previous_status":"pending"`)
		assert.NotContains(t, body, "BK999999")
	})

	t.Run("missing booking ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/stream/bookings/", nil)
		w := httptest.NewRecorder()

		handler.StreamBooking(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed bus", func(t *testing.T) {
		closed := events.NewMemoryEventBus()
		require.NoError(t, closed.Close())

		req := httptest.NewRequest(http.MethodGet, "/api/stream/bookings", nil)
		w := httptest.NewRecorder()
		handlers.NewSSEHandler(closed).StreamBookingUpdates(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSSEHandler_EndsWhenBusCloses(t *testing.T) {
	bus := events.NewMemoryEventBus()
	handler := handlers.NewSSEHandler(bus)

	w := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		handler.StreamBookingUpdates(w, httptest.NewRequest(http.MethodGet, "/api/stream/bookings", nil))
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, bus.Close())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after the bus closed")
	}
	assert.Equal(t, 0, handler.GetClientCount())
}
