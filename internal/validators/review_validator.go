package validators

import (
	"fmt"
	"strings"

	"orion/internal/models"
	"orion/internal/utils"
)

// ValidateReview checks an inbound review document.
func ValidateReview(r *models.Review) []string {
	var errors []string

	if strings.TrimSpace(r.UserID) == "" {
		errors = append(errors, "userId is required")
	}
	if strings.TrimSpace(r.UserName) == "" {
		errors = append(errors, "userName is required")
	}
	if r.Rating < utils.MinRating || r.Rating > utils.MaxRating {
		errors = append(errors, "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.Comment) == "" {
		errors = append(errors, "comment is required")
	}
	if len(r.Comment) > utils.MaxCommentLength {
		errors = append(errors, fmt.Sprintf("Comment cannot exceed %d characters", utils.MaxCommentLength))
	}
	for i, photo := range r.Photos {
		if !photoURLPattern.MatchString(photo) {
			errors = append(errors, fmt.Sprintf("Photo %d must be a valid URL", i))
		}
	}

	return errors
}

// ValidateReviewUpdate checks the fields present on a partial review update.
func ValidateReviewUpdate(u *models.ReviewUpdate) []string {
	var errors []string

	if u.Rating != nil && (*u.Rating < utils.MinRating || *u.Rating > utils.MaxRating) {
		errors = append(errors, "Rating must be between 1 and 5")
	}
	if u.Comment != nil && len(*u.Comment) > utils.MaxCommentLength {
		errors = append(errors, fmt.Sprintf("Comment cannot exceed %d characters", utils.MaxCommentLength))
	}

	return errors
}
