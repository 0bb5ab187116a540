package geolocation

import (
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/pkg/config"
)

// Factory creates one location provider per session
type Factory func() providers.LocationProvider

// NewFactory returns the provider factory selected by cfg.Provider.
// Both providers also implement providers.LocationFeed.
func NewFactory(cfg config.GeolocationConfig) Factory {
	if cfg.Provider == "device" {
		return func() providers.LocationProvider {
			return NewDeviceLocationProvider()
		}
	}

	position := providers.Coordinates{Latitude: cfg.DefaultLat, Longitude: cfg.DefaultLon}
	return func() providers.LocationProvider {
		return NewMockLocationProvider(position)
	}
}
