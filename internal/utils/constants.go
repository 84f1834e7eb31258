package utils

import "time"

// Application Constants
const (
	AppName    = "OrionTrailAPI"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Geo
	EarthRadiusKM        = 6371.0
	DefaultSearchRadiusM = 10000.0 // meters
	MinSearchRadiusM     = 100.0
	MaxSearchRadiusM     = 100000.0

	// Trail limits
	MaxTrailNameLength   = 100
	MaxDescriptionLength = 2000
	MaxTags              = 10
	MaxTagLength         = 50
	MaxPhotos            = 20
	MinRoutePoints       = 2

	// Review limits
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000

	// Sort fields accepted on trail listings
	SortName          = "name"
	SortDistance      = "distance"
	SortElevationGain = "elevationGain"
	SortCreatedAt     = "createdAt"
	SortLastUpdated   = "lastUpdated"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	// Cache
	TrailCacheTTL = 5 * time.Minute
	CountCacheTTL = 30 * time.Second

	// Response status
	StatusSuccess = "success"
	StatusError   = "error"

	// Error messages
	ErrValidationFailed = "Validation error"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
)

// TrailSortFields lists the sort fields a listing request may ask for.
func TrailSortFields() []string {
	return []string{SortName, SortDistance, SortElevationGain, SortCreatedAt, SortLastUpdated}
}

// IsValidSortField reports whether field is an accepted trail sort field.
func IsValidSortField(field string) bool {
	for _, f := range TrailSortFields() {
		if f == field {
			return true
		}
	}
	return false
}
