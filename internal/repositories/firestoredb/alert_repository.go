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

type alertRepository struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewAlertRepository(client *firestore.Client, log *logger.Logger) interfaces.AlertRepository {
	return &alertRepository{
		client: client,
		log:    log,
	}
}

func (r *alertRepository) alerts() *firestore.CollectionRef {
	return r.client.Collection(alertsCollection)
}

func (r *alertRepository) ListByTrail(ctx context.Context, trailID string) ([]*models.Alert, error) {
	docs, err := r.alerts().
		Where("trailId", "==", trailID).
		Where("isActive", "==", true).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list trail alerts: %w", err)
	}
	return decodeAlerts(docs)
}

func (r *alertRepository) ListAll(ctx context.Context, status interfaces.AlertStatusFilter, params *utils.PaginationParams) ([]*models.Alert, int64, error) {
	plan := ListPlan{Level: PlanRequested, Sort: "timestamp", Desc: true}
	switch status {
	case interfaces.AlertFilterActive:
		plan.Filters = append(plan.Filters, FieldFilter{Path: "isActive", Op: "==", Value: true})
	case interfaces.AlertFilterInactive:
		plan.Filters = append(plan.Filters, FieldFilter{Path: "isActive", Op: "==", Value: false})
	}

	var alerts []*models.Alert
	executed, err := RunWithFallback(plan, func(p ListPlan) error {
		docs, err := fetchPage(ctx, p.apply(r.alerts().Query), params)
		if err != nil {
			return err
		}
		alerts, err = decodeAlerts(docs)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}
	if executed.Level != plan.Level {
		r.log.WithField("plan", executed.Level.String()).
			Warn("alert listing filters dropped after missing-index failure")
	}

	total, err := countAll(ctx, r.alerts().Query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	return alerts, total, nil
}

func (r *alertRepository) Create(ctx context.Context, alert *models.Alert) error {
	ref := r.alerts().NewDoc()
	if _, err := ref.Create(ctx, alert); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	alert.ID = ref.ID
	return nil
}

func (r *alertRepository) GetByID(ctx context.Context, id string) (*models.Alert, error) {
	doc, err := getExisting(ctx, r.alerts().Doc(id))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return decodeAlert(doc)
}

func (r *alertRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	ref := r.alerts().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	updates["lastUpdated"] = time.Now()
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: path, Value: value})
	}

	if _, err := ref.Update(ctx, fsUpdates); err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}
	return nil
}

func (r *alertRepository) Delete(ctx context.Context, id string) error {
	ref := r.alerts().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	return nil
}

func decodeAlerts(docs []*firestore.DocumentSnapshot) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0, len(docs))
	for _, doc := range docs {
		alert, err := decodeAlert(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
