package providers

import (
	"context"
	"errors"
)

var (
	// ErrLocationUnsupported is returned when the device cannot provide a position at all
	ErrLocationUnsupported = errors.New("geolocation is not supported")

	// ErrLocationTimeout is returned when no position arrived within the deadline
	ErrLocationTimeout = errors.New("timed out waiting for a position")
)

// LocationProvider is the device-side source of the user's position
type LocationProvider interface {
	// RequestPermission asks for location access and, when granted, acquires a
	// first position. A denial is reported as (false, nil).
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition returns the most recent position, or nil when none is known
	CurrentPosition(ctx context.Context) (*Coordinates, error)

	// Watch streams position updates until ctx is cancelled
	Watch(ctx context.Context) (<-chan Coordinates, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationFeed is implemented by providers whose positions and permission
// decisions are pushed in by the client device
type LocationFeed interface {
	SetPermission(granted bool)
	Push(coords Coordinates)
}
