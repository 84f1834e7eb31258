package validators

import (
	"strings"

	"orion/internal/models"
)

// ValidateReportCreate checks an inbound report. Priority and status are
// optional on input; defaults are applied by the service.
func ValidateReportCreate(r *models.Report) []string {
	var errors []string

	if r.Type == "" {
		errors = append(errors, "type is required")
	} else if !r.Type.IsValid() {
		errors = append(errors, "Invalid report type")
	}
	if strings.TrimSpace(r.Category) == "" {
		errors = append(errors, "category is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		errors = append(errors, "description is required")
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		errors = append(errors, "Invalid priority level")
	}

	return errors
}

// ValidateReportUpdate checks the fields present on a partial report update.
func ValidateReportUpdate(u *models.ReportUpdate) []string {
	var errors []string

	if u.Status != nil && !u.Status.IsValid() {
		errors = append(errors, "Invalid status")
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		errors = append(errors, "Invalid priority level")
	}
	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		errors = append(errors, "category cannot be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		errors = append(errors, "description cannot be empty")
	}

	return errors
}
