package geolocation

import (
	"context"
	"sync"

	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

// DeviceLocationProvider relays the browser's geolocation API: the client
// posts its permission decision and positions, and RequestPermission waits
// for the decision until ctx expires.
type DeviceLocationProvider struct {
	mu       sync.Mutex
	decided  bool
	granted  bool
	position *providers.Coordinates
	decision chan struct{}
	watch    watchers
}

// NewDeviceLocationProvider creates a provider with no decision and no position
func NewDeviceLocationProvider() *DeviceLocationProvider {
	return &DeviceLocationProvider{decision: make(chan struct{})}
}

// RequestPermission returns the client's decision, waiting for one if needed
func (d *DeviceLocationProvider) RequestPermission(ctx context.Context) (bool, error) {
	d.mu.Lock()
	if d.decided {
		granted := d.granted
		d.mu.Unlock()
		return granted, nil
	}
	wait := d.decision
	d.mu.Unlock()

	select {
	case <-wait:
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.granted, nil
	case <-ctx.Done():
		return false, providers.ErrLocationTimeout
	}
}

// CurrentPosition returns the last pushed position, or nil before the first push
func (d *DeviceLocationProvider) CurrentPosition(ctx context.Context) (*providers.Coordinates, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.granted || d.position == nil {
		return nil, nil
	}
	pos := *d.position
	return &pos, nil
}

// Watch streams pushed positions until ctx is cancelled
func (d *DeviceLocationProvider) Watch(ctx context.Context) (<-chan providers.Coordinates, error) {
	return d.watch.open(ctx), nil
}

// SetPermission records the client's decision and wakes pending requests
func (d *DeviceLocationProvider) SetPermission(granted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.granted = granted
	if !d.decided {
		d.decided = true
		close(d.decision)
	}
}

// Push records a position reported by the client. Positions are ignored until access is granted.
func (d *DeviceLocationProvider) Push(coords providers.Coordinates) {
	d.mu.Lock()
	if !d.granted {
		d.mu.Unlock()
		return
	}
	d.position = &coords
	d.mu.Unlock()

	d.watch.send(coords)
}
