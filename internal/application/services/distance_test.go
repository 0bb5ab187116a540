package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(23.8103, 90.4125, 23.8103, 90.4125))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineDistance(23.8103, 90.4125, 22.3569, 91.7832)
		b := HaversineDistance(22.3569, 91.7832, 23.8103, 90.4125)
		assert.Equal(t, a, b)
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		d := HaversineDistance(23.8103, 90.4125, 22.3569, 91.7832)
		assert.InDelta(t, 213.6, d, 1.0)
		assert.InDelta(t, d*10, float64(int64(d*10+0.5)), 1e-6)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		assert.Equal(t, 111.2, HaversineDistance(0, 0, 1, 0))
	})
}

func TestEstimatedArrivalMinutes(t *testing.T) {
	tests := []struct {
		distance float64
		want     int
	}{
		{0, 0},
		{1.2, 6},
		{1.5, 8},
		{2, 10},
		{3.5, 18},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimatedArrivalMinutes(tt.distance), "distance %.1f", tt.distance)
	}
}

func TestEmergencySurcharge(t *testing.T) {
	assert.Equal(t, int64(800), EmergencySurcharge(550))
	assert.Equal(t, int64(570), EmergencySurcharge(320))
}
