package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/adapters/catalog"
	"github.com/zatekoja/nursecare/backend/internal/adapters/events"
	"github.com/zatekoja/nursecare/backend/internal/adapters/memory"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
)

var testStart = time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)

type recordingSink struct {
	mu    sync.Mutex
	items []entities.Notification
}

func (s *recordingSink) Notify(ctx context.Context, n entities.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, n)
}

func (s *recordingSink) all() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Notification(nil), s.items...)
}

func (s *recordingSink) last(t *testing.T) entities.Notification {
	t.Helper()
	items := s.all()
	require.NotEmpty(t, items, "expected a notification")
	return items[len(items)-1]
}

func newTestNotifier(lang entities.Language) (*Notifier, *recordingSink) {
	sink := &recordingSink{}
	return NewNotifier(sink, NewTranslator(), func() entities.Language { return lang }), sink
}

func newTestBookingService(seed ...entities.Booking) (*BookingService, *events.MemoryEventBus) {
	bus := events.NewMemoryEventBus()
	return NewBookingService(memory.NewBookingAdapter(seed), bus, nil), bus
}

func newTestCatalogService() *CatalogService {
	return NewCatalogService(catalog.NewStaticCatalogAdapter())
}

func newTestScheduler() *clock.Manual {
	return clock.NewManual(testStart)
}

func lineItem(id string, price int64) entities.ServiceLineItem {
	return entities.ServiceLineItem{
		ID:    id,
		Name:  entities.LocalizedText{EN: id, BN: id},
		Price: price,
	}
}
