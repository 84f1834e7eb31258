package interfaces

import (
	"context"

	"orion/internal/models"
	"orion/internal/utils"
)

// ReportListOptions filters the report listing. Empty fields mean "all".
type ReportListOptions struct {
	Status models.ReportStatus
	Type   models.ReportType
}

type ReportRepository interface {
	ListAll(ctx context.Context, opts ReportListOptions, params *utils.PaginationParams) ([]*models.Report, int64, error)
	ListByReporter(ctx context.Context, reporterID string, params *utils.PaginationParams) ([]*models.Report, error)
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
