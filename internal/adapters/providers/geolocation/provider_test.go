package geolocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/pkg/config"
)

var dhaka = providers.Coordinates{Latitude: 23.8103, Longitude: 90.4125}

func TestMockLocationProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("grants and reports the fixed position", func(t *testing.T) {
		p := NewMockLocationProvider(dhaka)

		granted, err := p.RequestPermission(ctx)
		require.NoError(t, err)
		assert.True(t, granted)

		pos, err := p.CurrentPosition(ctx)
		require.NoError(t, err)
		require.NotNil(t, pos)
		assert.Equal(t, dhaka, *pos)
	})

	t.Run("denied access hides the position", func(t *testing.T) {
		p := NewMockLocationProvider(dhaka)
		p.SetPermission(false)

		granted, err := p.RequestPermission(ctx)
		require.NoError(t, err)
		assert.False(t, granted)

		pos, _ := p.CurrentPosition(ctx)
		assert.Nil(t, pos)
	})

	t.Run("pushes reach watchers", func(t *testing.T) {
		p := NewMockLocationProvider(dhaka)
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch, err := p.Watch(watchCtx)
		require.NoError(t, err)

		moved := providers.Coordinates{Latitude: 23.75, Longitude: 90.39}
		p.Push(moved)

		select {
		case got := <-ch:
			assert.Equal(t, moved, got)
		case <-time.After(time.Second):
			t.Fatal("no position delivered")
		}
	})
}

func TestDeviceLocationProvider(t *testing.T) {
	t.Run("times out without a decision", func(t *testing.T) {
		p := NewDeviceLocationProvider()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		granted, err := p.RequestPermission(ctx)
		assert.False(t, granted)
		assert.ErrorIs(t, err, providers.ErrLocationTimeout)
	})

	t.Run("pending request wakes on decision", func(t *testing.T) {
		p := NewDeviceLocationProvider()
		done := make(chan bool, 1)

		go func() {
			granted, _ := p.RequestPermission(context.Background())
			done <- granted
		}()

		p.SetPermission(true)

		select {
		case granted := <-done:
			assert.True(t, granted)
		case <-time.After(time.Second):
			t.Fatal("request never returned")
		}
	})

	t.Run("positions before a grant are ignored", func(t *testing.T) {
		p := NewDeviceLocationProvider()
		p.Push(dhaka)
		p.SetPermission(true)

		pos, err := p.CurrentPosition(context.Background())
		require.NoError(t, err)
		assert.Nil(t, pos)

		p.Push(dhaka)
		pos, _ = p.CurrentPosition(context.Background())
		require.NotNil(t, pos)
		assert.Equal(t, dhaka, *pos)
	})

	t.Run("a later grant overrides a denial", func(t *testing.T) {
		p := NewDeviceLocationProvider()
		p.SetPermission(false)
		granted, _ := p.RequestPermission(context.Background())
		assert.False(t, granted)

		p.SetPermission(true)
		granted, _ = p.RequestPermission(context.Background())
		assert.True(t, granted)
	})
}

func TestNewFactory(t *testing.T) {
	mock := NewFactory(config.GeolocationConfig{Provider: "mock", DefaultLat: 1, DefaultLon: 2})()
	assert.IsType(t, &MockLocationProvider{}, mock)
	assert.Implements(t, (*providers.LocationFeed)(nil), mock)

	device := NewFactory(config.GeolocationConfig{Provider: "device"})()
	assert.IsType(t, &DeviceLocationProvider{}, device)
	assert.Implements(t, (*providers.LocationFeed)(nil), device)
}
