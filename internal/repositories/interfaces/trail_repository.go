package interfaces

import (
	"context"

	"orion/internal/models"
	"orion/internal/utils"
)

type TrailRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, trail *models.Trail) error
	GetByID(ctx context.Context, id string) (*models.Trail, error)
	Update(ctx context.Context, trail *models.Trail) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)

	// List runs the filtered, sorted, cursor-paginated listing. The backend
	// may degrade the requested sort or drop filters entirely under index
	// pressure; callers receive whatever the executed plan produced.
	List(ctx context.Context, opts models.TrailListOptions, params *utils.PaginationParams) ([]*models.Trail, int64, error)

	// ListFiltered fetches all trails matching the equality/array filters,
	// unsorted and unpaginated. Used by the in-memory text search.
	ListFiltered(ctx context.Context, opts models.TrailListOptions) ([]*models.Trail, error)

	// ListOpen fetches every open trail. Used by the geo scanner.
	ListOpen(ctx context.Context) ([]*models.Trail, error)

	Count(ctx context.Context) (int64, error)
}
