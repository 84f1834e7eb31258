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

type AlertService struct {
	repo   interfaces.AlertRepository
	trails interfaces.TrailRepository
	log    *logger.Logger
}

func NewAlertService(repo interfaces.AlertRepository, trails interfaces.TrailRepository, log *logger.Logger) *AlertService {
	return &AlertService{
		repo:   repo,
		trails: trails,
		log:    log,
	}
}

func (s *AlertService) ListByTrail(ctx context.Context, trailID string) ([]*models.Alert, error) {
	exists, err := s.trails.Exists(ctx, trailID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newNotFound("Trail")
	}
	return s.repo.ListByTrail(ctx, trailID)
}

func (s *AlertService) ListAll(ctx context.Context, status interfaces.AlertStatusFilter, params *utils.PaginationParams) ([]*models.Alert, *utils.Pagination, error) {
	alerts, total, err := s.repo.ListAll(ctx, status, params)
	if err != nil {
		return nil, nil, err
	}
	return alerts, utils.NewPagination(params, total), nil
}

// Create records a new alert for a trail. Timed alerts get an expiry
// computed from the requested duration in minutes; the expiry is advisory
// and never deactivates the alert on its own.
func (s *AlertService) Create(ctx context.Context, create *models.AlertCreate) (*models.Alert, error) {
	if errs := validators.ValidateAlertCreate(create); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	exists, err := s.trails.Exists(ctx, create.TrailID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newNotFound("Trail")
	}

	now := time.Now()
	alert := &models.Alert{
		ID:        uuid.NewString(),
		TrailID:   create.TrailID,
		Message:   create.Message,
		Type:      create.Type,
		Comment:   create.Comment,
		IsActive:  true,
		IsTimed:   create.IsTimed,
		Timestamp: now,
	}
	if create.IsTimed {
		expires := now.Add(time.Duration(create.Duration) * time.Minute)
		alert.ExpiresAt = &expires
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"trail_id": alert.TrailID,
		"alert_id": alert.ID,
		"type":     alert.Type,
	}).Info("alert created")
	return alert, nil
}

func (s *AlertService) GetByID(ctx context.Context, id string) (*models.Alert, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "Alert")
	}
	return alert, nil
}

func (s *AlertService) Update(ctx context.Context, id string, update *models.AlertUpdate) (*models.Alert, error) {
	if errs := validators.ValidateAlertUpdate(update); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	updates := make(map[string]interface{})
	if update.IsActive != nil {
		updates["isActive"] = *update.IsActive
	}
	if update.Message != nil {
		updates["message"] = *update.Message
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.Comment != nil {
		updates["comment"] = *update.Comment
	}
	if len(updates) == 0 {
		return nil, newValidation([]string{"At least one field must be provided for update"})
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, wrapNotFound(err, "Alert")
	}
	return s.GetByID(ctx, id)
}

func (s *AlertService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrapNotFound(err, "Alert")
	}
	return nil
}
