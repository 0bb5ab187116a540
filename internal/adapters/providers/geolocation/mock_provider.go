package geolocation

import (
	"context"
	"sync"

	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

// MockLocationProvider answers permission requests immediately with a fixed position
type MockLocationProvider struct {
	mu       sync.RWMutex
	granted  bool
	position providers.Coordinates
	watch    watchers
}

// NewMockLocationProvider creates a mock provider that grants access and reports position
func NewMockLocationProvider(position providers.Coordinates) *MockLocationProvider {
	return &MockLocationProvider{
		granted:  true,
		position: position,
	}
}

// RequestPermission reports the configured decision without waiting
func (m *MockLocationProvider) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, providers.ErrLocationTimeout
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.granted, nil
}

// CurrentPosition returns the fixed position while access is granted
func (m *MockLocationProvider) CurrentPosition(ctx context.Context) (*providers.Coordinates, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.granted {
		return nil, nil
	}
	pos := m.position
	return &pos, nil
}

// Watch streams positions passed to Push
func (m *MockLocationProvider) Watch(ctx context.Context) (<-chan providers.Coordinates, error) {
	return m.watch.open(ctx), nil
}

// SetPermission changes the answer given to later permission requests
func (m *MockLocationProvider) SetPermission(granted bool) {
	m.mu.Lock()
	m.granted = granted
	m.mu.Unlock()
}

// Push moves the mock device and notifies watchers
func (m *MockLocationProvider) Push(coords providers.Coordinates) {
	m.mu.Lock()
	m.position = coords
	m.mu.Unlock()
	m.watch.send(coords)
}
