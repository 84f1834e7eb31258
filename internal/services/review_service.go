package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
	"orion/internal/validators"
	"orion/pkg/logger"
)

type ReviewService struct {
	repo   interfaces.ReviewRepository
	trails interfaces.TrailRepository
	log    *logger.Logger
}

func NewReviewService(repo interfaces.ReviewRepository, trails interfaces.TrailRepository, log *logger.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		trails: trails,
		log:    log,
	}
}

func (s *ReviewService) ListByTrail(ctx context.Context, trailID string) ([]*models.Review, error) {
	if err := s.requireTrail(ctx, trailID); err != nil {
		return nil, err
	}
	return s.repo.ListByTrail(ctx, trailID)
}

// Create writes a new review after checking the one-review-per-user
// invariant against live data. The check and the write are not atomic;
// concurrent duplicates are an accepted race.
func (s *ReviewService) Create(ctx context.Context, trailID string, review *models.Review) (*models.Review, error) {
	if errs := validators.ValidateReview(review); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	if err := s.requireTrail(ctx, trailID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForUser(ctx, trailID, review.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newConflict("User has already reviewed this trail")
	}

	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.TrailID = trailID
	if review.Timestamp.IsZero() {
		review.Timestamp = time.Now()
	}

	if err := s.repo.Create(ctx, trailID, review); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"trail_id":  trailID,
		"review_id": review.ID,
	}).Info("review created")
	return review, nil
}

func (s *ReviewService) GetByID(ctx context.Context, trailID, reviewID string) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, trailID, reviewID)
	if err != nil {
		return nil, wrapNotFound(err, "Review")
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, trailID, reviewID string, update *models.ReviewUpdate) (*models.Review, error) {
	if errs := validators.ValidateReviewUpdate(update); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	if err := s.requireTrail(ctx, trailID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Rating != nil {
		updates["rating"] = *update.Rating
	}
	if update.Comment != nil {
		updates["comment"] = *update.Comment
	}
	if update.Photos != nil {
		updates["photos"] = update.Photos
	}

	if err := s.repo.Update(ctx, trailID, reviewID, updates); err != nil {
		return nil, wrapNotFound(err, "Review")
	}

	review, err := s.repo.GetByID(ctx, trailID, reviewID)
	if err != nil {
		return nil, wrapNotFound(err, "Review")
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, trailID, reviewID string) error {
	if err := s.requireTrail(ctx, trailID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, trailID, reviewID); err != nil {
		return wrapNotFound(err, "Review")
	}
	return nil
}

func (s *ReviewService) ListAll(ctx context.Context, trailID string, params *utils.PaginationParams) ([]*models.Review, error) {
	return s.repo.ListAll(ctx, trailID, params)
}

func (s *ReviewService) requireTrail(ctx context.Context, trailID string) error {
	exists, err := s.trails.Exists(ctx, trailID)
	if err != nil {
		return err
	}
	if !exists {
		return newNotFound("Trail")
	}
	return nil
}
