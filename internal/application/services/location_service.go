package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// LocationListener receives coordinate updates
type LocationListener func(providers.Coordinates)

// Subscription is a registered LocationListener
type Subscription struct {
	listener LocationListener
	active   atomic.Bool
}

// Active reports whether the subscription still receives updates
func (s *Subscription) Active() bool {
	return s.active.Load()
}

// LocationService publishes the session's current coordinates to subscribers.
// Updates are delivered synchronously, one update at a time, to listeners in
// registration order. Listeners must not call Publish or Subscribe.
type LocationService struct {
	provider providers.LocationProvider
	timeout  time.Duration

	mu          sync.Mutex
	current     *providers.Coordinates
	subs        []*Subscription
	watchCancel context.CancelFunc

	deliverMu sync.Mutex
}

// NewLocationService creates a publisher over provider. Permission requests
// give up after timeout.
func NewLocationService(provider providers.LocationProvider, timeout time.Duration) *LocationService {
	return &LocationService{
		provider: provider,
		timeout:  timeout,
	}
}

// Provider returns the underlying location provider
func (s *LocationService) Provider() providers.LocationProvider {
	return s.provider
}

// Subscribe registers listener. When a position is already known the
// listener is called with it before Subscribe returns.
func (s *LocationService) Subscribe(listener LocationListener) *Subscription {
	sub := &Subscription{listener: listener}
	sub.active.Store(true)

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	var current *providers.Coordinates
	if s.current != nil {
		c := *s.current
		current = &c
	}
	s.mu.Unlock()

	if current != nil {
		listener(*current)
	}
	return sub
}

// Unsubscribe stops deliveries to sub, including the rest of an update in progress
func (s *LocationService) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.active.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subs {
		if existing == sub {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Current returns the last published position, or nil
func (s *LocationService) Current() *providers.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Publish records coords as current and notifies every subscriber
func (s *LocationService) Publish(coords providers.Coordinates) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.current = &coords
	subs := append([]*Subscription(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		if sub.active.Load() {
			sub.listener(coords)
		}
	}
}

// RequestPermission asks the provider for access and publishes the first
// position when one is available. Denial is reported as (false, nil).
func (s *LocationService) RequestPermission(ctx context.Context) (bool, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	granted, err := s.provider.RequestPermission(ctx)
	if err != nil {
		return false, locationError(err)
	}
	if !granted {
		return false, nil
	}

	pos, err := s.provider.CurrentPosition(ctx)
	if err != nil {
		return true, locationError(err)
	}
	if pos != nil {
		s.Publish(*pos)
	}
	return true, nil
}

// Watch publishes every position the provider streams until StopWatching
// is called or ctx ends. A second call replaces the first watch.
func (s *LocationService) Watch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	updates, err := s.provider.Watch(ctx)
	if err != nil {
		cancel()
		return locationError(err)
	}

	s.mu.Lock()
	if s.watchCancel != nil {
		s.watchCancel()
	}
	s.watchCancel = cancel
	s.mu.Unlock()

	go func() {
		for coords := range updates {
			s.Publish(coords)
		}
	}()
	return nil
}

// StopWatching ends the current watch
func (s *LocationService) StopWatching() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
}

func locationError(err error) error {
	switch {
	case errors.Is(err, providers.ErrLocationUnsupported):
		return apperrors.NewExternalError("location unavailable", err)
	case errors.Is(err, providers.ErrLocationTimeout), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewExternalError("location unavailable", providers.ErrLocationTimeout)
	default:
		return apperrors.NewExternalError("location unavailable", err)
	}
}
