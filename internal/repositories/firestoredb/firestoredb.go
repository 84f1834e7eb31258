// Package firestoredb implements the repository interfaces on Cloud
// Firestore. Firestore offers a limited query algebra: equality/range/
// array-membership filters, a single compound sort, and cursor-based
// pagination only. The helpers in this package paper over those limits
// (offset emulation, index-fallback plans, in-memory counts).
package firestoredb

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
)

const (
	trailsCollection  = "trails"
	reviewsCollection = "reviews"
	alertsCollection  = "alerts"
	reportsCollection = "reports"
	usersCollection   = "users"
)

// Cache is the slice of the redis cache the repositories use. All
// repositories are nil-safe without one.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func decodeTrail(doc *firestore.DocumentSnapshot) (*models.Trail, error) {
	var trail models.Trail
	if err := doc.DataTo(&trail); err != nil {
		return nil, err
	}
	trail.ID = doc.Ref.ID
	return &trail, nil
}

func decodeReview(doc *firestore.DocumentSnapshot) (*models.Review, error) {
	var review models.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, err
	}
	review.ID = doc.Ref.ID
	return &review, nil
}

func decodeAlert(doc *firestore.DocumentSnapshot) (*models.Alert, error) {
	var alert models.Alert
	if err := doc.DataTo(&alert); err != nil {
		return nil, err
	}
	alert.ID = doc.Ref.ID
	return &alert, nil
}

func decodeReport(doc *firestore.DocumentSnapshot) (*models.Report, error) {
	var report models.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, err
	}
	report.ID = doc.Ref.ID
	return &report, nil
}

// getExisting loads a document snapshot, translating a missing document
// into interfaces.ErrNotFound.
func getExisting(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, interfaces.ErrNotFound
		}
		return nil, err
	}
	if !doc.Exists() {
		return nil, interfaces.ErrNotFound
	}
	return doc, nil
}
