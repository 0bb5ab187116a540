package services

import (
	"context"
	"sync"
	"time"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// BookingFlowView is a snapshot of a booking flow for rendering
type BookingFlowView struct {
	Open    bool                       `json:"open"`
	Step    entities.BookingStep       `json:"step"`
	Items   []entities.ServiceLineItem `json:"items"`
	Total   int64                      `json:"total"`
	Draft   entities.BookingDraft      `json:"draft"`
	Booking *entities.Booking          `json:"booking,omitempty"`
}

// BookingFlow walks a finalized selection through summary, details and
// confirmation. After confirming it closes itself once closeDelay elapses.
type BookingFlow struct {
	mu         sync.Mutex
	open       bool
	step       entities.BookingStep
	items      []entities.ServiceLineItem
	draft      entities.BookingDraft
	confirmed  *entities.Booking
	generation int

	bookings   *BookingService
	notifier   *Notifier
	scheduler  clock.Scheduler
	closeDelay time.Duration
}

// NewBookingFlow creates a closed flow
func NewBookingFlow(bookings *BookingService, notifier *Notifier, scheduler clock.Scheduler, closeDelay time.Duration) *BookingFlow {
	f := &BookingFlow{
		bookings:   bookings,
		notifier:   notifier,
		scheduler:  scheduler,
		closeDelay: closeDelay,
	}
	f.resetLocked()
	return f
}

// Start opens the flow on the summary step with items
func (f *BookingFlow) Start(ctx context.Context, items []entities.ServiceLineItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == entities.BookingStepConfirmation {
		return apperrors.NewConflictError("previous booking is still being confirmed")
	}

	f.resetLocked()
	f.open = true
	f.items = append([]entities.ServiceLineItem(nil), items...)
	return nil
}

// View returns the current state
func (f *BookingFlow) View() BookingFlowView {
	f.mu.Lock()
	defer f.mu.Unlock()

	return BookingFlowView{
		Open:    f.open,
		Step:    f.step,
		Items:   append([]entities.ServiceLineItem{}, f.items...),
		Total:   sumPrices(f.items),
		Draft:   f.draft,
		Booking: f.confirmed,
	}
}

// Step returns the current step
func (f *BookingFlow) Step() entities.BookingStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// RemoveItem drops an item while reviewing the summary
func (f *BookingFlow) RemoveItem(ctx context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != entities.BookingStepSummary {
		return apperrors.NewConflictError("items can only be removed from the summary")
	}
	for i, item := range f.items {
		if item.ID == itemID {
			f.items = append(f.items[:i:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("service item not found")
}

// ProceedToDetails moves from summary to details
func (f *BookingFlow) ProceedToDetails(ctx context.Context) error {
	f.mu.Lock()
	if f.step != entities.BookingStepSummary {
		f.mu.Unlock()
		return apperrors.NewConflictError("booking flow is not on the summary step")
	}
	if len(f.items) == 0 {
		f.mu.Unlock()
		f.notifier.Alert(ctx, keyNoServicesTitle, keyNoServicesDesc)
		return apperrors.NewValidationError("no services selected")
	}
	f.step = entities.BookingStepDetails
	f.mu.Unlock()
	return nil
}

// Back returns from details to summary, keeping the draft
func (f *BookingFlow) Back(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != entities.BookingStepDetails {
		return apperrors.NewConflictError("booking flow is not on the details step")
	}
	f.step = entities.BookingStepSummary
	return nil
}

// UpdateDraft replaces the draft. An empty care provider keeps the default.
func (f *BookingFlow) UpdateDraft(ctx context.Context, draft entities.BookingDraft) error {
	if draft.CareProvider == "" {
		draft.CareProvider = entities.CareProviderFemale
	}
	if !draft.CareProvider.Valid() {
		return apperrors.NewValidationError("care provider must be male or female")
	}
	if draft.Date != "" {
		if _, err := time.Parse(entities.DraftDateLayout, draft.Date); err != nil {
			return apperrors.NewValidationError("date must be YYYY-MM-DD")
		}
	}
	if draft.Time != "" {
		if _, err := time.Parse("15:04", draft.Time); err != nil {
			return apperrors.NewValidationError("time must be HH:MM")
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == entities.BookingStepConfirmation {
		return apperrors.NewConflictError("booking is already confirmed")
	}
	f.draft = draft
	return nil
}

// UseCurrentLocation fills the address with the detected-location marker
func (f *BookingFlow) UseCurrentLocation(ctx context.Context) error {
	f.mu.Lock()
	if f.step != entities.BookingStepDetails {
		f.mu.Unlock()
		return apperrors.NewConflictError("booking flow is not on the details step")
	}
	f.draft.Address = f.notifier.Text(keyDetectedLocation)
	f.mu.Unlock()

	f.notifier.Info(ctx, keyUsingLocationTitle, keyUsingLocationDesc)
	return nil
}

// Confirm creates a pending booking from the items and draft. Without
// consent it fails validation and the flow stays on details.
func (f *BookingFlow) Confirm(ctx context.Context) (*entities.Booking, error) {
	f.mu.Lock()
	if f.step != entities.BookingStepDetails {
		f.mu.Unlock()
		return nil, apperrors.NewConflictError("booking flow is not on the details step")
	}
	if !f.draft.AgreeToTerms {
		f.mu.Unlock()
		f.notifier.Alert(ctx, keyTermsTitle, keyTermsDesc)
		return nil, apperrors.NewValidationError("terms and conditions not accepted")
	}

	booking, err := f.bookings.Create(ctx, f.items, f.draft)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	f.step = entities.BookingStepConfirmation
	f.confirmed = booking
	f.generation++
	generation := f.generation
	f.mu.Unlock()

	f.notifier.Info(ctx, keyBookingConfirmedTitle, keyBookingConfirmedDesc)
	f.scheduler.AfterFunc(f.closeDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.generation == generation && f.step == entities.BookingStepConfirmation {
			f.resetLocked()
		}
	})
	return booking, nil
}

// Close shuts the flow and discards items and draft
func (f *BookingFlow) Close(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *BookingFlow) resetLocked() {
	f.open = false
	f.step = entities.BookingStepSummary
	f.items = nil
	f.confirmed = nil
	f.draft = entities.NewBookingDraft(f.today())
}

func (f *BookingFlow) today() time.Time {
	if f.scheduler == nil {
		return time.Now()
	}
	return f.scheduler.Now()
}
