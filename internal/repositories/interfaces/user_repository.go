package interfaces

import (
	"context"

	"orion/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile models.ProfileInfo) error

	// List mutations use the backend's atomic array transforms. Each call
	// updates a single user document.
	AddToList(ctx context.Context, userID string, list models.TrailList, trailID string) error
	RemoveFromList(ctx context.Context, userID string, list models.TrailList, trailID string) error

	// MarkCompleted adds the trail to completed and removes it from
	// favourites and wishlist in one document update, so the three-list
	// invariant holds atomically.
	MarkCompleted(ctx context.Context, userID, trailID string) error
}
