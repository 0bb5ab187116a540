package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const maxBookingIDAttempts = 20

// BookingView selects which bookings List returns
type BookingView string

const (
	BookingViewAll     BookingView = "all"
	BookingViewPending BookingView = "pending"
	BookingViewHistory BookingView = "history"
)

// ParseBookingView returns the view named s; the empty string means all
func ParseBookingView(s string) (BookingView, error) {
	switch BookingView(s) {
	case "", BookingViewAll:
		return BookingViewAll, nil
	case BookingViewPending, BookingViewHistory:
		return BookingView(s), nil
	}
	return "", apperrors.NewValidationError("view must be all, pending or history")
}

// BookingService owns the shared booking collection
type BookingService struct {
	repo     repositories.BookingRepository
	eventBus providers.EventBus
	metrics  *observability.Metrics
	newID    func() string
}

// NewBookingService creates a new booking service. eventBus and metrics may be nil.
func NewBookingService(repo repositories.BookingRepository, eventBus providers.EventBus, metrics *observability.Metrics) *BookingService {
	return &BookingService{
		repo:     repo,
		eventBus: eventBus,
		metrics:  metrics,
		newID:    randomBookingID,
	}
}

func randomBookingID() string {
	return fmt.Sprintf("BK%06d", 100000+rand.IntN(900000))
}

// Create synthesizes a pending booking from the confirmed items and draft and adds it to the collection
func (s *BookingService) Create(ctx context.Context, items []entities.ServiceLineItem, draft entities.BookingDraft) (*entities.Booking, error) {
	ctx, span := observability.StartSpan(ctx, "BookingService.Create")
	defer span.End()

	services := make([]string, 0, len(items))
	for _, item := range items {
		services = append(services, item.Name.EN)
	}

	careProvider := draft.CareProvider
	if !careProvider.Valid() {
		careProvider = entities.CareProviderFemale
	}

	booking := &entities.Booking{
		Services:     services,
		Date:         draft.Date,
		Time:         draft.Time,
		Price:        sumPrices(items),
		Status:       entities.BookingStatusPending,
		CareProvider: careProvider,
	}

	for attempt := 0; attempt < maxBookingIDAttempts; attempt++ {
		booking.ID = s.newID()
		err := s.Add(ctx, booking)
		if err == nil {
			observability.SetSpanAttributes(span,
				attribute.String("booking.id", booking.ID),
				attribute.Int64("booking.price", booking.Price),
			)
			return booking, nil
		}
		if !apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			observability.RecordError(span, err)
			return nil, err
		}
	}

	err := apperrors.NewInternalError("could not allocate a booking id", nil)
	observability.RecordError(span, err)
	return nil, err
}

// Add appends booking to the collection and publishes a created event
func (s *BookingService) Add(ctx context.Context, booking *entities.Booking) error {
	if err := s.repo.Create(ctx, booking); err != nil {
		return err
	}

	observability.RecordBookingCreated(ctx, s.metrics)
	s.publish(ctx, entities.NewBookingEvent(entities.BookingEventCreated, booking, ""))
	observability.LoggerFromContext(ctx).Info().
		Str("booking_id", booking.ID).
		Int64("price", booking.Price).
		Msg("Booking created")
	return nil
}

// Get retrieves a booking by ID
func (s *BookingService) Get(ctx context.Context, id string) (*entities.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the bookings in view, newest first
func (s *BookingService) List(ctx context.Context, view BookingView) ([]*entities.Booking, error) {
	switch view {
	case BookingViewPending:
		return s.Pending(ctx)
	case BookingViewHistory:
		return s.History(ctx)
	default:
		return s.All(ctx)
	}
}

// All returns every booking, newest first
func (s *BookingService) All(ctx context.Context) ([]*entities.Booking, error) {
	return s.repo.List(ctx, repositories.BookingFilter{})
}

// Pending returns the bookings still awaiting payment or cancellation
func (s *BookingService) Pending(ctx context.Context) ([]*entities.Booking, error) {
	return s.repo.List(ctx, repositories.BookingFilter{Status: entities.BookingStatusPending})
}

// History returns the processed and cancelled bookings
func (s *BookingService) History(ctx context.Context) ([]*entities.Booking, error) {
	return s.repo.List(ctx, repositories.BookingFilter{NotStatus: entities.BookingStatusPending})
}

// SetStatus moves a pending booking to processed or cancelled. Unknown IDs
// fail with a not found error and non-pending bookings with a conflict.
func (s *BookingService) SetStatus(ctx context.Context, id string, status entities.BookingStatus) (*entities.Booking, error) {
	ctx, span := observability.StartSpan(ctx, "BookingService.SetStatus")
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("booking.id", id),
		attribute.String("booking.status", string(status)),
	)

	booking, previous, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	observability.RecordBookingStatusChange(ctx, s.metrics, string(status))
	s.publish(ctx, entities.NewBookingEvent(entities.BookingEventStatusChanged, booking, previous))
	observability.LoggerFromContext(ctx).Info().
		Str("booking_id", id).
		Str("from", string(previous)).
		Str("to", string(status)).
		Msg("Booking status changed")
	return booking, nil
}

// ProceedToPayment marks a pending booking processed and tells the customer to pay
func (s *BookingService) ProceedToPayment(ctx context.Context, id string, notifier *Notifier) (*entities.Booking, error) {
	booking, err := s.SetStatus(ctx, id, entities.BookingStatusProcessed)
	if err != nil {
		return nil, err
	}
	notifier.Info(ctx, keyPaymentTitle, keyPaymentDesc)
	return booking, nil
}

// Cancel marks a pending booking cancelled
func (s *BookingService) Cancel(ctx context.Context, id string, notifier *Notifier) (*entities.Booking, error) {
	booking, err := s.SetStatus(ctx, id, entities.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	notifier.Alert(ctx, keyCancelledTitle, keyCancelledDesc)
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, event *entities.BookingEvent) {
	if s.eventBus == nil {
		return
	}
	for _, channel := range []string{providers.EventChannelBookingUpdates, providers.GetBookingChannel(event.BookingID)} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("channel", channel).Msg("Failed to publish booking event")
		}
	}
}
