package interfaces

import (
	"context"

	"orion/internal/models"
	"orion/internal/utils"
)

// AlertStatusFilter selects alerts by activation state in ListAll.
type AlertStatusFilter string

const (
	AlertFilterAll      AlertStatusFilter = "all"
	AlertFilterActive   AlertStatusFilter = "active"
	AlertFilterInactive AlertStatusFilter = "inactive"
)

type AlertRepository interface {
	ListByTrail(ctx context.Context, trailID string) ([]*models.Alert, error)
	ListAll(ctx context.Context, status AlertStatusFilter, params *utils.PaginationParams) ([]*models.Alert, int64, error)
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id string) (*models.Alert, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
