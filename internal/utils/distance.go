package utils

import (
	"math"

	"orion/internal/models"
)

// CalculateDistance returns the great-circle distance between two points in
// kilometers.
func CalculateDistance(a, b models.GeoPoint) float64 {
	return haversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DistanceMeters returns the great-circle distance between two points
// rounded to whole meters.
func DistanceMeters(a, b models.GeoPoint) int {
	return int(math.Round(CalculateDistance(a, b) * 1000))
}

func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	// Differences
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	// Haversine formula
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// IsWithinRadius reports whether point lies within radiusKM of center.
func IsWithinRadius(center, point models.GeoPoint, radiusKM float64) bool {
	return CalculateDistance(center, point) <= radiusKM
}
