package validators

import (
	"orion/internal/models"
)

// ValidateProfileInfo checks the editable part of a user record.
func ValidateProfileInfo(p *models.ProfileInfo) []string {
	return ValidateStruct(p).Messages()
}
