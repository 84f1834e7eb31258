package interfaces

import (
	"context"

	"orion/internal/models"
	"orion/internal/utils"
)

type ReviewRepository interface {
	// Subcollection operations, scoped to one trail
	ListByTrail(ctx context.Context, trailID string) ([]*models.Review, error)
	GetByID(ctx context.Context, trailID, reviewID string) (*models.Review, error)
	Create(ctx context.Context, trailID string, review *models.Review) error
	Update(ctx context.Context, trailID, reviewID string, updates map[string]interface{}) error
	Delete(ctx context.Context, trailID, reviewID string) error

	// ExistsForUser reports whether the user already reviewed the trail.
	// Always checked against live data, never a cache.
	ExistsForUser(ctx context.Context, trailID, userID string) (bool, error)

	// ListAll walks the reviews collection group across all trails.
	ListAll(ctx context.Context, trailID string, params *utils.PaginationParams) ([]*models.Review, error)
}
