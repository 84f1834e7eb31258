package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type trailRepository struct {
	client *firestore.Client
	cache  Cache
	log    *logger.Logger
}

func NewTrailRepository(client *firestore.Client, cache Cache, log *logger.Logger) interfaces.TrailRepository {
	return &trailRepository{
		client: client,
		cache:  cache,
		log:    log,
	}
}

func (r *trailRepository) trails() *firestore.CollectionRef {
	return r.client.Collection(trailsCollection)
}

func trailCacheKey(id string) string {
	return "trail:" + id
}

const trailCountKey = "trails:count"

func (r *trailRepository) Create(ctx context.Context, trail *models.Trail) error {
	ref := r.trails().NewDoc()
	if _, err := ref.Create(ctx, trail); err != nil {
		return fmt.Errorf("failed to create trail: %w", err)
	}
	trail.ID = ref.ID

	r.invalidateCount(ctx)
	return nil
}

func (r *trailRepository) GetByID(ctx context.Context, id string) (*models.Trail, error) {
	if r.cache != nil {
		var cached models.Trail
		if err := r.cache.Get(ctx, trailCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	doc, err := getExisting(ctx, r.trails().Doc(id))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get trail: %w", err)
	}

	trail, err := decodeTrail(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode trail: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, trailCacheKey(id), trail, utils.TrailCacheTTL)
	}

	return trail, nil
}

func (r *trailRepository) Update(ctx context.Context, trail *models.Trail) error {
	ref := r.trails().Doc(trail.ID)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	if _, err := ref.Set(ctx, trail); err != nil {
		return fmt.Errorf("failed to update trail: %w", err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, trailCacheKey(trail.ID))
	}
	return nil
}

func (r *trailRepository) Delete(ctx context.Context, id string) error {
	ref := r.trails().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete trail: %w", err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, trailCacheKey(id))
	}
	r.invalidateCount(ctx)
	return nil
}

func (r *trailRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := getExisting(ctx, r.trails().Doc(id))
	if err == interfaces.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check trail existence: %w", err)
	}
	return true, nil
}

func (r *trailRepository) List(ctx context.Context, opts models.TrailListOptions, params *utils.PaginationParams) ([]*models.Trail, int64, error) {
	plan := ResolveTrailPlan(opts)
	if plan.Level == PlanDegraded {
		r.log.WithFields(map[string]interface{}{
			"requested_sort": opts.Sort,
			"plan":           plan.Level.String(),
		}).Warn("trail listing sort degraded to createdAt; composite index not provisioned for this filter/sort combination")
	}

	var trails []*models.Trail
	executed, err := RunWithFallback(plan, func(p ListPlan) error {
		docs, err := fetchPage(ctx, p.apply(r.trails().Query), params)
		if err != nil {
			return err
		}
		trails = trails[:0]
		for _, doc := range docs {
			trail, err := decodeTrail(doc)
			if err != nil {
				return err
			}
			trails = append(trails, trail)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trails: %w", err)
	}
	if executed.Level == PlanMinimal && plan.Level != PlanMinimal {
		r.log.WithField("plan", executed.Level.String()).
			Warn("trail listing filters dropped after missing-index failure; returning unfiltered results")
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return trails, total, nil
}

func (r *trailRepository) ListFiltered(ctx context.Context, opts models.TrailListOptions) ([]*models.Trail, error) {
	// Equality and array-membership filters without an orderBy never need a
	// composite index, so no fallback is involved here.
	q := r.trails().Query
	if opts.Difficulty != "" {
		q = q.Where("difficulty", "==", string(opts.Difficulty))
	}
	if opts.Status != "" {
		q = q.Where("status", "==", string(opts.Status))
	}
	if len(opts.Tags) > 0 {
		q = q.Where("tags", "array-contains-any", opts.Tags)
	}

	return r.getAllTrails(ctx, q)
}

func (r *trailRepository) ListOpen(ctx context.Context) ([]*models.Trail, error) {
	q := r.trails().Where("status", "==", string(models.StatusOpen))
	return r.getAllTrails(ctx, q)
}

func (r *trailRepository) Count(ctx context.Context) (int64, error) {
	if r.cache != nil {
		var cached int64
		if err := r.cache.Get(ctx, trailCountKey, &cached); err == nil {
			return cached, nil
		}
	}

	total, err := countAll(ctx, r.trails().Query)
	if err != nil {
		return 0, fmt.Errorf("failed to count trails: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, trailCountKey, total, utils.CountCacheTTL)
	}
	return total, nil
}

func (r *trailRepository) getAllTrails(ctx context.Context, q firestore.Query) ([]*models.Trail, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trails: %w", err)
	}

	trails := make([]*models.Trail, 0, len(docs))
	for _, doc := range docs {
		trail, err := decodeTrail(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode trail: %w", err)
		}
		trails = append(trails, trail)
	}
	return trails, nil
}

func (r *trailRepository) invalidateCount(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, trailCountKey)
	}
}
