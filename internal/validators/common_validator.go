package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"orion/internal/models"
)

var validate *validator.Validate

var photoURLPattern = regexp.MustCompile(`^https?://.+`)

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("photo_url", validatePhotoURL)
	validate.RegisterValidation("trail_difficulty", validateTrailDifficulty)
	validate.RegisterValidation("trail_status", validateTrailStatus)
	validate.RegisterValidation("alert_type", validateAlertType)
	validate.RegisterValidation("rating_value", validateRatingValue)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// Messages flattens the errors into the per-field message list used in
// API responses.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return messages
}

// ValidateStruct validates a struct against its tags and returns detailed
// errors.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Please enter a valid email address"
	case "max":
		if err.Kind().String() == "slice" {
			return fmt.Sprintf("%s cannot have more than %s items", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s characters", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "photo_url":
		return "Photo must be a valid URL"
	case "trail_difficulty":
		return "Difficulty must be one of: Easy, Moderate, Hard, Expert"
	case "trail_status":
		return "Status must be one of: open, closed, maintenance, seasonal"
	case "alert_type":
		return "Invalid alert type"
	case "rating_value":
		return "Rating must be between 1 and 5"
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func validatePhotoURL(fl validator.FieldLevel) bool {
	return photoURLPattern.MatchString(fl.Field().String())
}

func validateTrailDifficulty(fl validator.FieldLevel) bool {
	return models.TrailDifficulty(fl.Field().String()).IsValid()
}

func validateTrailStatus(fl validator.FieldLevel) bool {
	return models.TrailStatus(fl.Field().String()).IsValid()
}

func validateAlertType(fl validator.FieldLevel) bool {
	return models.AlertType(fl.Field().String()).IsValid()
}

func validateRatingValue(fl validator.FieldLevel) bool {
	rating := fl.Field().Int()
	return rating >= 1 && rating <= 5
}

// ValidateGeoPoint checks coordinate bounds, prefixing messages with the
// given field label.
func ValidateGeoPoint(label string, p models.GeoPoint) []string {
	var errors []string
	if p.Latitude < -90 || p.Latitude > 90 {
		errors = append(errors, fmt.Sprintf("%s: Latitude must be a number between -90 and 90", label))
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		errors = append(errors, fmt.Sprintf("%s: Longitude must be a number between -180 and 180", label))
	}
	return errors
}
