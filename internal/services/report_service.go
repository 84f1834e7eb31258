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

type ReportService struct {
	repo   interfaces.ReportRepository
	trails interfaces.TrailRepository
	log    *logger.Logger
}

func NewReportService(repo interfaces.ReportRepository, trails interfaces.TrailRepository, log *logger.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		trails: trails,
		log:    log,
	}
}

func (s *ReportService) ListAll(ctx context.Context, opts interfaces.ReportListOptions, params *utils.PaginationParams) ([]*models.Report, *utils.Pagination, error) {
	reports, total, err := s.repo.ListAll(ctx, opts, params)
	if err != nil {
		return nil, nil, err
	}
	return reports, utils.NewPagination(params, total), nil
}

func (s *ReportService) ListByReporter(ctx context.Context, reporterID string, params *utils.PaginationParams) ([]*models.Report, error) {
	return s.repo.ListByReporter(ctx, reporterID, params)
}

// Create files a new report. Priority defaults to medium and status to
// pending. When the report references a trail, the trail must exist.
func (s *ReportService) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	if errs := validators.ValidateReportCreate(report); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	if report.TrailID != "" {
		exists, err := s.trails.Exists(ctx, report.TrailID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, newNotFound("Trail")
		}
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.Priority == "" {
		report.Priority = models.PriorityMedium
	}
	report.Status = models.ReportPending
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"report_id": report.ID,
		"type":      report.Type,
		"priority":  report.Priority,
	}).Info("report created")
	return report, nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*models.Report, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "Report")
	}
	return report, nil
}

func (s *ReportService) Update(ctx context.Context, id string, update *models.ReportUpdate) (*models.Report, error) {
	if errs := validators.ValidateReportUpdate(update); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	updates := make(map[string]interface{})
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Priority != nil {
		updates["priority"] = *update.Priority
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if len(updates) == 0 {
		return nil, newValidation([]string{"At least one field must be provided for update"})
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, wrapNotFound(err, "Report")
	}
	return s.GetByID(ctx, id)
}

// UpdateStatus moves a report to a new status. Any transition is allowed.
func (s *ReportService) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	if !status.IsValid() {
		return nil, newValidation([]string{"Invalid status"})
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return nil, wrapNotFound(err, "Report")
	}
	return s.GetByID(ctx, id)
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrapNotFound(err, "Report")
	}
	return nil
}
