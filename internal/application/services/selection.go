package services

import (
	"context"
	"sync"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// BookingStarter receives a finalized selection
type BookingStarter interface {
	Start(ctx context.Context, items []entities.ServiceLineItem) error
}

// Selection is the working set of line items picked from one category.
// Items keep the order in which they were added.
type Selection struct {
	mu         sync.Mutex
	categoryID string
	items      []entities.ServiceLineItem
	notifier   *Notifier
}

// NewSelection creates an empty selection
func NewSelection(notifier *Notifier) *Selection {
	return &Selection{notifier: notifier}
}

// Open scopes the selection to categoryID. Opening a different category discards the current items.
func (s *Selection) Open(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryID != categoryID {
		s.categoryID = categoryID
		s.items = nil
	}
}

// CategoryID returns the category the selection is scoped to
func (s *Selection) CategoryID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryID
}

// Toggle adds item, or removes it when an item with the same ID is present.
// It reports whether the item is selected afterwards.
func (s *Selection) Toggle(item entities.ServiceLineItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

// Contains reports whether an item with id is selected
func (s *Selection) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the selected items
func (s *Selection) Items() []entities.ServiceLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.ServiceLineItem{}, s.items...)
}

// Total returns the summed price of the selected items
func (s *Selection) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumPrices(s.items)
}

// Finalize hands the selection to flow and clears it. An empty selection
// fails validation and leaves flow untouched.
func (s *Selection) Finalize(ctx context.Context, flow BookingStarter) error {
	s.mu.Lock()
	items := append([]entities.ServiceLineItem(nil), s.items...)
	s.mu.Unlock()

	if len(items) == 0 {
		s.notifier.Alert(ctx, keyNoServicesTitle, keyNoServicesDesc)
		return apperrors.NewValidationError("no services selected")
	}

	if err := flow.Start(ctx, items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notifier.Info(ctx, keyProceedBookingTitle, keyProceedBookingDesc, len(items))
	return nil
}

func sumPrices(items []entities.ServiceLineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}
