package repository

import (
	"context"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/pkg/utils"
)

// Repository is the data-access contract shared by every catalog entity.
//
// GetByID returns (nil, nil) when the record does not exist. Update and
// Delete report a missing record by returning false; errors are reserved for
// invalid input and storage failures.
type Repository[T entity.Identifiable] interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID, include ...string) (*T, error)
	Query(ctx context.Context, criteria QueryCriteria, paging utils.PagingParams) (*utils.PaginatedResult[T], error)
	Count(ctx context.Context, criteria QueryCriteria) (int64, error)
	Add(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
