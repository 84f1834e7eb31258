package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/pkg/logger"
)

type userRepository struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewUserRepository(client *firestore.Client, log *logger.Logger) interfaces.UserRepository {
	return &userRepository{
		client: client,
		log:    log,
	}
}

func (r *userRepository) users() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := getExisting(ctx, r.users().Doc(id))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, profile models.ProfileInfo) error {
	ref := r.users().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "profileInfo", Value: profile},
	})
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}

func (r *userRepository) AddToList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	ref := r.users().Doc(userID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: string(list), Value: firestore.ArrayUnion(trailID)},
	})
	if err != nil {
		return fmt.Errorf("failed to add trail to %s: %w", list, err)
	}
	return nil
}

func (r *userRepository) RemoveFromList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	ref := r.users().Doc(userID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: string(list), Value: firestore.ArrayRemove(trailID)},
	})
	if err != nil {
		return fmt.Errorf("failed to remove trail from %s: %w", list, err)
	}
	return nil
}

func (r *userRepository) MarkCompleted(ctx context.Context, userID, trailID string) error {
	ref := r.users().Doc(userID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	// One document update with three transforms; Firestore applies it
	// atomically, so completed/favourites/wishlist never disagree.
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: string(models.ListCompleted), Value: firestore.ArrayUnion(trailID)},
		{Path: string(models.ListFavourites), Value: firestore.ArrayRemove(trailID)},
		{Path: string(models.ListWishlist), Value: firestore.ArrayRemove(trailID)},
	})
	if err != nil {
		return fmt.Errorf("failed to mark trail completed: %w", err)
	}
	return nil
}
