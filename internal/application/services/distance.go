package services

import "math"

const (
	earthRadiusKm = 6371.0

	// MinutesPerKm is the travel model used for arrival estimates
	MinutesPerKm = 5

	// DefaultEmergencySurcharge is added to a nurse's hourly rate for emergency visits
	DefaultEmergencySurcharge int64 = 250
)

// HaversineDistance returns the great-circle distance in kilometres between
// two points, rounded to one decimal place.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

// EstimatedArrivalMinutes converts a distance into a whole number of minutes
func EstimatedArrivalMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * MinutesPerKm))
}

// EmergencySurcharge returns the emergency hourly rate for a nurse
func EmergencySurcharge(hourlyRate int64) int64 {
	return hourlyRate + DefaultEmergencySurcharge
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
