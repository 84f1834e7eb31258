package validators

import (
	"fmt"
	"strings"

	"orion/internal/models"
	"orion/internal/utils"
)

// ValidateTrail checks a complete trail document. It returns the full list
// of problems; validation always precedes any backend write.
func ValidateTrail(t *models.Trail) []string {
	errors := ValidateStruct(t).Messages()

	if strings.TrimSpace(t.Name) == "" {
		errors = appendUnique(errors, "Trail name is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		errors = appendUnique(errors, "Trail description is required")
	}

	for _, msg := range ValidateGeoPoint("location", t.Location) {
		errors = append(errors, msg)
	}

	// gpsRoute is optional, but when present it must describe a real path.
	if t.GPSRoute != nil {
		if len(t.GPSRoute) < utils.MinRoutePoints {
			errors = append(errors, "GPS route must have at least 2 points")
		}
		for i, point := range t.GPSRoute {
			errors = append(errors, ValidateGeoPoint(fmt.Sprintf("GPS route point %d", i), point)...)
		}
	}

	return errors
}

func appendUnique(errors []string, msg string) []string {
	for _, e := range errors {
		if e == msg {
			return errors
		}
	}
	return append(errors, msg)
}
