package validators

import (
	"strings"
	"testing"

	"orion/internal/models"
)

func baseTrail() *models.Trail {
	return &models.Trail{
		Name:        "Granite Loop",
		Location:    models.GeoPoint{Latitude: 46.85, Longitude: -121.76},
		Distance:    8.2,
		Difficulty:  models.DifficultyModerate,
		Description: "Loop around the granite basin.",
		Status:      models.StatusOpen,
		CreatedBy:   "user-1",
	}
}

func hasMessageContaining(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestValidateTrailAcceptsValid(t *testing.T) {
	if errs := ValidateTrail(baseTrail()); len(errs) != 0 {
		t.Errorf("valid trail rejected: %v", errs)
	}
}

func TestValidateTrailFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Trail)
		message string
	}{
		{"empty name", func(tr *models.Trail) { tr.Name = "" }, "required"},
		{"whitespace name", func(tr *models.Trail) { tr.Name = "   " }, "Trail name is required"},
		{"name too long", func(tr *models.Trail) { tr.Name = strings.Repeat("x", 101) }, "cannot exceed 100"},
		{"negative distance", func(tr *models.Trail) { tr.Distance = -1 }, "at least"},
		{"bad difficulty", func(tr *models.Trail) { tr.Difficulty = "Brutal" }, "Difficulty must be one of"},
		{"bad status", func(tr *models.Trail) { tr.Status = "paused" }, "Status must be one of"},
		{"too many tags", func(tr *models.Trail) { tr.Tags = make([]string, 11) }, "more than 10"},
		{"bad photo url", func(tr *models.Trail) { tr.Photos = []string{"ftp://example.com/a.jpg"} }, "valid URL"},
		{"missing description", func(tr *models.Trail) { tr.Description = "" }, "required"},
		{"latitude out of range", func(tr *models.Trail) { tr.Location.Latitude = 91 }, "between -90 and 90"},
		{"longitude out of range", func(tr *models.Trail) { tr.Location.Longitude = -181 }, "between -180 and 180"},
		{"no creator", func(tr *models.Trail) { tr.CreatedBy = "" }, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := baseTrail()
			tt.mutate(trail)

			errs := ValidateTrail(trail)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			if !hasMessageContaining(errs, tt.message) {
				t.Errorf("messages %v missing %q", errs, tt.message)
			}
		})
	}
}

func TestValidateTrailGPSRoute(t *testing.T) {
	trail := baseTrail()
	trail.GPSRoute = []models.GeoPoint{{Latitude: 46.85, Longitude: -121.76}}

	errs := ValidateTrail(trail)
	if !hasMessageContaining(errs, "at least 2 points") {
		t.Errorf("single-point route accepted: %v", errs)
	}

	trail.GPSRoute = []models.GeoPoint{
		{Latitude: 46.85, Longitude: -121.76},
		{Latitude: 200, Longitude: 0},
	}
	errs = ValidateTrail(trail)
	if !hasMessageContaining(errs, "GPS route point 1") {
		t.Errorf("out-of-range route point accepted: %v", errs)
	}

	trail.GPSRoute = []models.GeoPoint{
		{Latitude: 46.85, Longitude: -121.76},
		{Latitude: 46.86, Longitude: -121.75},
	}
	if errs := ValidateTrail(trail); len(errs) != 0 {
		t.Errorf("valid route rejected: %v", errs)
	}
}

func TestValidateTrailCollectsAllErrors(t *testing.T) {
	trail := &models.Trail{
		Location: models.GeoPoint{Latitude: 100, Longitude: 200},
	}

	errs := ValidateTrail(trail)
	if len(errs) < 4 {
		t.Errorf("expected errors for name, difficulty, description, creator and location, got %v", errs)
	}
}

func TestValidateReviewRules(t *testing.T) {
	valid := &models.Review{UserID: "u1", UserName: "Alex", Rating: 5, Comment: "Superb."}
	if errs := ValidateReview(valid); len(errs) != 0 {
		t.Errorf("valid review rejected: %v", errs)
	}

	bad := &models.Review{Rating: 0, Comment: strings.Repeat("a", 1001)}
	errs := ValidateReview(bad)
	for _, want := range []string{"userId", "userName", "between 1 and 5", "1000"} {
		if !hasMessageContaining(errs, want) {
			t.Errorf("messages %v missing %q", errs, want)
		}
	}
}

func TestValidateAlertCreateRules(t *testing.T) {
	valid := &models.AlertCreate{TrailID: "t1", Message: "Bridge washed out", Type: models.AlertCondition}
	if errs := ValidateAlertCreate(valid); len(errs) != 0 {
		t.Errorf("valid alert rejected: %v", errs)
	}

	timed := &models.AlertCreate{TrailID: "t1", Message: "Storm inbound", Type: models.AlertWeather, IsTimed: true}
	if errs := ValidateAlertCreate(timed); !hasMessageContaining(errs, "duration") {
		t.Errorf("timed alert without duration accepted: %v", errs)
	}

	bad := &models.AlertCreate{Type: "volcano"}
	errs := ValidateAlertCreate(bad)
	for _, want := range []string{"trailId", "message", "alert type"} {
		if !hasMessageContaining(errs, want) {
			t.Errorf("messages %v missing %q", errs, want)
		}
	}
}

func TestValidateReportCreateRules(t *testing.T) {
	valid := &models.Report{Type: models.ReportTrail, Category: "spam", Description: "Duplicate listing."}
	if errs := ValidateReportCreate(valid); len(errs) != 0 {
		t.Errorf("valid report rejected: %v", errs)
	}

	bad := &models.Report{Type: "gossip", Priority: "extreme"}
	errs := ValidateReportCreate(bad)
	for _, want := range []string{"report type", "category", "description", "priority"} {
		if !hasMessageContaining(errs, want) {
			t.Errorf("messages %v missing %q", errs, want)
		}
	}
}
