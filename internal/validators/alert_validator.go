package validators

import (
	"strings"

	"orion/internal/models"
)

// ValidateAlertCreate checks an inbound alert payload.
func ValidateAlertCreate(a *models.AlertCreate) []string {
	var errors []string

	if strings.TrimSpace(a.TrailID) == "" {
		errors = append(errors, "trailId is required")
	}
	if strings.TrimSpace(a.Message) == "" {
		errors = append(errors, "message is required")
	}
	if a.Type == "" {
		errors = append(errors, "type is required")
	} else if !a.Type.IsValid() {
		errors = append(errors, "Invalid alert type")
	}
	if a.IsTimed && a.Duration <= 0 {
		errors = append(errors, "duration must be a positive number of minutes for timed alerts")
	}

	return errors
}

// ValidateAlertUpdate checks the fields present on a partial alert update.
func ValidateAlertUpdate(u *models.AlertUpdate) []string {
	var errors []string

	if u.Type != nil && !u.Type.IsValid() {
		errors = append(errors, "Invalid alert type")
	}
	if u.Message != nil && strings.TrimSpace(*u.Message) == "" {
		errors = append(errors, "message cannot be empty")
	}

	return errors
}
