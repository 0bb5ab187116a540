package entities

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusProcessed BookingStatus = "processed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusProcessed || s == BookingStatusCancelled
}

// CareProvider is the customer's preferred nurse gender
type CareProvider string

const (
	CareProviderMale   CareProvider = "male"
	CareProviderFemale CareProvider = "female"
)

// Valid reports whether p is one of the known preferences.
func (p CareProvider) Valid() bool {
	return p == CareProviderMale || p == CareProviderFemale
}

// Booking is a committed service order
type Booking struct {
	ID           string        `json:"id"`
	Services     []string      `json:"services"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Price        int64         `json:"price"`
	Status       BookingStatus `json:"status"`
	CareProvider CareProvider  `json:"care_provider"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// BookingStep is a step of the booking flow
type BookingStep string

const (
	BookingStepSummary      BookingStep = "summary"
	BookingStepDetails      BookingStep = "details"
	BookingStepConfirmation BookingStep = "confirmation"
)

// BookingDraft holds the customer and appointment fields collected in the details step
type BookingDraft struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	CareProvider CareProvider `json:"care_provider"`
	AgreeToTerms bool         `json:"agree_to_terms"`
}

// DraftDateLayout is the layout of BookingDraft.Date
const DraftDateLayout = "2006-01-02"

// DefaultDraftTime is the appointment time a fresh draft starts with
const DefaultDraftTime = "09:00"

// NewBookingDraft returns a draft with the form defaults for the given day.
func NewBookingDraft(today time.Time) BookingDraft {
	return BookingDraft{
		Date:         today.Format(DraftDateLayout),
		Time:         DefaultDraftTime,
		CareProvider: CareProviderFemale,
	}
}
