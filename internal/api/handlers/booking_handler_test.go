package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) List(ctx context.Context, view services.BookingView) ([]*entities.Booking, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Booking), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, id string) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingService) ProceedToPayment(ctx context.Context, id string, notifier *services.Notifier) (*entities.Booking, error) {
	args := m.Called(ctx, id, notifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, id string, notifier *services.Notifier) (*entities.Booking, error) {
	args := m.Called(ctx, id, notifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func TestBookingHandler_ListBookings(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		view           services.BookingView
		expectedStatus int
		expectedCount  float64
	}{
		{name: "default view is all", query: "", view: services.BookingViewAll, expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "pending", query: "?view=pending", view: services.BookingViewPending, expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "history", query: "?view=history", view: services.BookingViewHistory, expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "unknown view", query: "?view=archived", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookingService)
			handler := handlers.NewBookingHandler(mockService, nil)

			if tt.view != "" {
				mockService.On("List", mock.Anything, tt.view).Return([]*entities.Booking{
					{ID: "BK200001", Status: entities.BookingStatusPending, Price: 500},
					{ID: "BK123456", Status: entities.BookingStatusPending, Price: 1200},
				}, nil)
			}

			w := httptest.NewRecorder()
			handler.ListBookings(w, httptest.NewRequest(http.MethodGet, "/api/bookings"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				assert.Equal(t, string(tt.view), body["view"])
				assert.Equal(t, tt.expectedCount, body["count"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_ListBookings_RepositoryError(t *testing.T) {
	mockService := new(MockBookingService)
	handler := handlers.NewBookingHandler(mockService, nil)
	mockService.On("List", mock.Anything, services.BookingViewAll).Return(nil, apperrors.NewInternalError("boom", nil))

	w := httptest.NewRecorder()
	handler.ListBookings(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
}

func TestBookingHandler_GetBooking(t *testing.T) {
	mockService := new(MockBookingService)
	handler := handlers.NewBookingHandler(mockService, nil)

	mockService.On("Get", mock.Anything, "BK123456").Return(&entities.Booking{ID: "BK123456", Price: 1200}, nil)
	mockService.On("Get", mock.Anything, "BK000000").Return(nil, apperrors.NewNotFoundError("booking not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/BK123456", nil)
	req.SetPathValue("id", "BK123456")
	w := httptest.NewRecorder()
	handler.GetBooking(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1200), decodeBody(t, w)["price"])

	req = httptest.NewRequest(http.MethodGet, "/api/bookings/BK000000", nil)
	req.SetPathValue("id", "BK000000")
	w = httptest.NewRecorder()
	handler.GetBooking(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking not found", decodeBody(t, w)["error"])

	w = httptest.NewRecorder()
	handler.GetBooking(w, httptest.NewRequest(http.MethodGet, "/api/bookings/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_SessionScopedActions(t *testing.T) {
	stack := newTestStack(t, "mock")
	mockService := new(MockBookingService)
	handler := handlers.NewBookingHandler(mockService, stack.sessions)
	sid := createSession(t, handlers.NewSessionHandler(stack.sessions), "en")

	mockService.On("ProceedToPayment", mock.Anything, "BK123456", mock.AnythingOfType("*services.Notifier")).
		Return(&entities.Booking{ID: "BK123456", Status: entities.BookingStatusProcessed}, nil)
	mockService.On("Cancel", mock.Anything, "BK123457", mock.AnythingOfType("*services.Notifier")).
		Return(nil, apperrors.NewConflictError("booking is not pending"))

	req := jsonRequest(t, http.MethodPost, "/api/sessions/"+sid+"/bookings/BK123456/proceed", sid, nil)
	req.SetPathValue("id", "BK123456")
	w := httptest.NewRecorder()
	handler.ProceedToPayment(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "processed", decodeBody(t, w)["status"])

	req = jsonRequest(t, http.MethodPost, "/api/sessions/"+sid+"/bookings/BK123457/cancel", sid, nil)
	req.SetPathValue("id", "BK123457")
	w = httptest.NewRecorder()
	handler.CancelBooking(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	req = jsonRequest(t, http.MethodPost, "/api/sessions/unknown/bookings/BK123456/cancel", "unknown", nil)
	req.SetPathValue("id", "BK123456")
	w = httptest.NewRecorder()
	handler.CancelBooking(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}
