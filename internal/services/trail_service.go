package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
	"orion/internal/validators"
	"orion/pkg/logger"
)

// TrailService owns trail lifecycle and the listing/search/geo-search
// orchestration.
type TrailService struct {
	repo interfaces.TrailRepository
	log  *logger.Logger
}

func NewTrailService(repo interfaces.TrailRepository, log *logger.Logger) *TrailService {
	return &TrailService{
		repo: repo,
		log:  log,
	}
}

func (s *TrailService) Create(ctx context.Context, trail *models.Trail) (*models.Trail, error) {
	if trail.Status == "" {
		trail.Status = models.StatusOpen
	}
	if trail.Tags == nil {
		trail.Tags = []string{}
	}
	if trail.Photos == nil {
		trail.Photos = []string{}
	}

	if errs := validators.ValidateTrail(trail); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	now := time.Now()
	trail.CreatedAt = now
	trail.LastUpdated = now

	if err := s.repo.Create(ctx, trail); err != nil {
		return nil, err
	}

	s.log.WithField("trail_id", trail.ID).Info("trail created")
	return trail, nil
}

func (s *TrailService) GetByID(ctx context.Context, id string) (*models.Trail, error) {
	trail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "Trail")
	}
	return trail, nil
}

func (s *TrailService) Update(ctx context.Context, id string, update *models.TrailUpdate) (*models.Trail, error) {
	if update.IsEmpty() {
		return nil, newValidation([]string{"At least one field must be provided for update"})
	}

	trail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "Trail")
	}

	update.ApplyTo(trail)
	if errs := validators.ValidateTrail(trail); len(errs) > 0 {
		return nil, newValidation(errs)
	}

	trail.LastUpdated = time.Now()
	if err := s.repo.Update(ctx, trail); err != nil {
		return nil, wrapNotFound(err, "Trail")
	}

	return trail, nil
}

func (s *TrailService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrapNotFound(err, "Trail")
	}
	s.log.WithField("trail_id", id).Info("trail deleted")
	return nil
}

// List returns one page of trails under the resolved (possibly degraded)
// query plan, plus the response pagination block.
func (s *TrailService) List(ctx context.Context, opts models.TrailListOptions, params *utils.PaginationParams) ([]*models.Trail, *utils.Pagination, error) {
	trails, total, err := s.repo.List(ctx, opts, params)
	if err != nil {
		return nil, nil, err
	}
	return trails, utils.NewPagination(params, total), nil
}

// SearchNear performs the geo scan: every open trail is fetched, annotated
// with its Haversine distance from the query point, filtered by radius,
// sorted ascending by distance, and sliced in memory. O(N) per request.
func (s *TrailService) SearchNear(ctx context.Context, origin models.GeoPoint, maxDistanceM float64, params *utils.PaginationParams) ([]*models.NearbyTrail, *utils.Pagination, error) {
	trails, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, nil, err
	}

	nearby := scanNearby(trails, origin, maxDistanceM)

	total := int64(len(nearby))
	start, end := utils.SliceBounds(params, len(nearby))
	return nearby[start:end], utils.NewPagination(params, total), nil
}

// Search is a case-insensitive substring match over name, description and
// tags, performed in memory after a filtered fetch. Not a search index.
func (s *TrailService) Search(ctx context.Context, query string, opts models.TrailListOptions) ([]*models.Trail, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newValidation([]string{"Search query is required"})
	}

	trails, err := s.repo.ListFiltered(ctx, opts)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	matched := make([]*models.Trail, 0)
	for _, trail := range trails {
		searchable := strings.ToLower(trail.Name + " " + trail.Description + " " + strings.Join(trail.Tags, " "))
		if strings.Contains(searchable, term) {
			matched = append(matched, trail)
		}
	}
	return matched, nil
}

func scanNearby(trails []*models.Trail, origin models.GeoPoint, maxDistanceM float64) []*models.NearbyTrail {
	nearby := make([]*models.NearbyTrail, 0)
	for _, trail := range trails {
		meters := utils.DistanceMeters(origin, trail.Location)
		if float64(meters) <= maxDistanceM {
			nearby = append(nearby, &models.NearbyTrail{
				Trail:                *trail,
				DistanceFromLocation: meters,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceFromLocation < nearby[j].DistanceFromLocation
	})
	return nearby
}
