package events

import (
	"context"
	"sync"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// MemoryEventBus delivers booking events within the process
type MemoryEventBus struct {
	local  *fanout
	mu     sync.Mutex
	closed bool
}

// NewMemoryEventBus creates an in-process event bus
func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{local: newFanout()}
}

var _ providers.EventBus = (*MemoryEventBus)(nil)

// Publish delivers event to every current subscriber of channel
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.BookingEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return apperrors.NewInternalError("event bus closed", nil)
	}
	b.local.broadcast(channel, event)
	return nil
}

// Subscribe subscribes to events on a channel until ctx is done
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.BookingEvent, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, apperrors.NewInternalError("event bus closed", nil)
	}
	eventChan, _ := b.local.add(channel)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		b.local.remove(channel, eventChan)
	}()

	return eventChan, nil
}

// Unsubscribe drops every subscriber of a channel
func (b *MemoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.local.drop(channel)
	return nil
}

// Close closes every subscription; later publishes fail
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for _, channel := range b.local.channels() {
		b.local.drop(channel)
	}
	return nil
}
