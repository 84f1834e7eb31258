package models

// GeoPoint is a single latitude/longitude coordinate. It is used both for
// trail locations and for GPS route points.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// IsValid reports whether the point lies within valid coordinate bounds.
func (p GeoPoint) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
