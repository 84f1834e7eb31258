package firestoredb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type reviewRepository struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewReviewRepository(client *firestore.Client, log *logger.Logger) interfaces.ReviewRepository {
	return &reviewRepository{
		client: client,
		log:    log,
	}
}

func (r *reviewRepository) reviews(trailID string) *firestore.CollectionRef {
	return r.client.Collection(trailsCollection).Doc(trailID).Collection(reviewsCollection)
}

func (r *reviewRepository) ListByTrail(ctx context.Context, trailID string) ([]*models.Review, error) {
	docs, err := r.reviews(trailID).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*models.Review, 0, len(docs))
	for _, doc := range docs {
		review, err := decodeReview(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, trailID, reviewID string) (*models.Review, error) {
	doc, err := getExisting(ctx, r.reviews(trailID).Doc(reviewID))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return decodeReview(doc)
}

func (r *reviewRepository) Create(ctx context.Context, trailID string, review *models.Review) error {
	ref := r.reviews(trailID).Doc(review.ID)
	if _, err := ref.Create(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, trailID, reviewID string, updates map[string]interface{}) error {
	ref := r.reviews(trailID).Doc(reviewID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	updates["lastUpdated"] = time.Now()
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: path, Value: value})
	}

	if _, err := ref.Update(ctx, fsUpdates); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, trailID, reviewID string) error {
	ref := r.reviews(trailID).Doc(reviewID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *reviewRepository) ExistsForUser(ctx context.Context, trailID, userID string) (bool, error) {
	docs, err := r.reviews(trailID).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, fmt.Errorf("failed to check for existing review: %w", err)
	}
	return len(docs) > 0, nil
}

func (r *reviewRepository) ListAll(ctx context.Context, trailID string, params *utils.PaginationParams) ([]*models.Review, error) {
	q := r.client.CollectionGroup(reviewsCollection).Query
	if trailID != "" {
		q = q.Where("trailId", "==", trailID)
	}
	q = q.OrderBy("timestamp", firestore.Desc)

	docs, err := fetchPage(ctx, q, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list all reviews: %w", err)
	}

	reviews := make([]*models.Review, 0, len(docs))
	for _, doc := range docs {
		review, err := decodeReview(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
