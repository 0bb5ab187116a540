package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEOLOCATION_PROVIDER", "")
	t.Setenv("BOOKING_CONFIRMATION_DELAY", "")
	t.Setenv("EMERGENCY_SEARCH_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.Geolocation.Provider)
	assert.Equal(t, 5*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Booking.ConfirmationDelay)
	assert.Equal(t, 2*time.Second, cfg.Emergency.SearchDelay)
	assert.Equal(t, int64(250), cfg.Emergency.Surcharge)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "en", cfg.App.DefaultLanguage)
}

func TestLoad_DelaysClampedToOneSecond(t *testing.T) {
	t.Setenv("BOOKING_CONFIRMATION_DELAY", "200ms")
	t.Setenv("EMERGENCY_SEARCH_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Booking.ConfirmationDelay)
	assert.Equal(t, time.Second, cfg.Emergency.SearchDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://m.example.com")
	t.Setenv("GEOLOCATION_PROVIDER", "device")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.RedisAddr())
	assert.Equal(t, []string{"https://app.example.com", "https://m.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "device", cfg.Geolocation.Provider)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("GEOLOCATION_PROVIDER", "google")

	_, err := Load()
	assert.Error(t, err)
}
