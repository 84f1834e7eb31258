package services

import (
	"context"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/validators"
	"orion/pkg/logger"
)

type UserService struct {
	repo   interfaces.UserRepository
	trails interfaces.TrailRepository
	log    *logger.Logger
}

func NewUserService(repo interfaces.UserRepository, trails interfaces.TrailRepository, log *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		trails: trails,
		log:    log,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapNotFound(err, "User")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, profile models.ProfileInfo) (*models.User, error) {
	if errs := validators.ValidateProfileInfo(&profile); len(errs) > 0 {
		return nil, newValidation(errs)
	}
	if err := s.repo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, wrapNotFound(err, "User")
	}
	return s.GetProfile(ctx, userID)
}

// GetSavedTrails resolves the user's three trail lists into full trail
// documents. Dangling references to deleted trails are skipped silently.
func (s *UserService) GetSavedTrails(ctx context.Context, userID string) (*models.SavedTrails, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapNotFound(err, "User")
	}

	saved := &models.SavedTrails{
		Favourites: []*models.Trail{},
		Wishlist:   []*models.Trail{},
		Completed:  []*models.Trail{},
	}
	saved.Favourites, err = s.resolveTrails(ctx, user.Favourites)
	if err != nil {
		return nil, err
	}
	saved.Wishlist, err = s.resolveTrails(ctx, user.Wishlist)
	if err != nil {
		return nil, err
	}
	saved.Completed, err = s.resolveTrails(ctx, user.Completed)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *UserService) resolveTrails(ctx context.Context, ids []string) ([]*models.Trail, error) {
	trails := make([]*models.Trail, 0, len(ids))
	for _, id := range ids {
		trail, err := s.trails.GetByID(ctx, id)
		if err != nil {
			if IsNotFound(wrapNotFound(err, "Trail")) {
				s.log.WithField("trail_id", id).Warn("skipping dangling trail reference")
				continue
			}
			return nil, err
		}
		trails = append(trails, trail)
	}
	return trails, nil
}

func (s *UserService) AddFavorite(ctx context.Context, userID, trailID string) error {
	return s.addToList(ctx, userID, models.ListFavourites, trailID)
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, trailID string) error {
	return s.removeFromList(ctx, userID, models.ListFavourites, trailID)
}

func (s *UserService) AddWishlist(ctx context.Context, userID, trailID string) error {
	return s.addToList(ctx, userID, models.ListWishlist, trailID)
}

func (s *UserService) RemoveWishlist(ctx context.Context, userID, trailID string) error {
	return s.removeFromList(ctx, userID, models.ListWishlist, trailID)
}

// MarkCompleted records a finished hike. The trail leaves favourites and
// wishlist in the same write that adds it to completed.
func (s *UserService) MarkCompleted(ctx context.Context, userID, trailID string) error {
	if err := s.requireTrail(ctx, trailID); err != nil {
		return err
	}
	if err := s.repo.MarkCompleted(ctx, userID, trailID); err != nil {
		return wrapNotFound(err, "User")
	}
	s.log.WithFields(map[string]interface{}{
		"user_id":  userID,
		"trail_id": trailID,
	}).Info("trail marked completed")
	return nil
}

func (s *UserService) RemoveCompleted(ctx context.Context, userID, trailID string) error {
	return s.removeFromList(ctx, userID, models.ListCompleted, trailID)
}

func (s *UserService) addToList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	if err := s.requireTrail(ctx, trailID); err != nil {
		return err
	}
	if err := s.repo.AddToList(ctx, userID, list, trailID); err != nil {
		return wrapNotFound(err, "User")
	}
	return nil
}

func (s *UserService) removeFromList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	if err := s.repo.RemoveFromList(ctx, userID, list, trailID); err != nil {
		return wrapNotFound(err, "User")
	}
	return nil
}

func (s *UserService) requireTrail(ctx context.Context, trailID string) error {
	exists, err := s.trails.Exists(ctx, trailID)
	if err != nil {
		return err
	}
	if !exists {
		return newNotFound("Trail")
	}
	return nil
}
