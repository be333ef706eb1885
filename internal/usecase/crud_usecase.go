package usecase

import (
	"context"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/utils"
)

// Mapper converts between the input/output shapes of one entity and the
// entity itself. All three functions are required.
type Mapper[T entity.Identifiable, C, U, D any] struct {
	FromCreate func(C) T
	FromUpdate func(U) T
	ToDTO      func(T) D
}

// CrudUseCase is the shared service behaviour of every catalog entity.
// Entity-specific use cases embed it and override Add/Update where they
// enforce extra rules.
type CrudUseCase[T entity.Identifiable, C, U, D any] struct {
	repo   repository.Repository[T]
	mapper Mapper[T, C, U, D]
}

func NewCrudUseCase[T entity.Identifiable, C, U, D any](repo repository.Repository[T], mapper Mapper[T, C, U, D]) *CrudUseCase[T, C, U, D] {
	return &CrudUseCase[T, C, U, D]{
		repo:   repo,
		mapper: mapper,
	}
}

// GetByID returns nil without an error when the record does not exist.
func (uc *CrudUseCase[T, C, U, D]) GetByID(ctx context.Context, id uuid.UUID, include ...string) (*D, error) {
	e, err := uc.repo.GetByID(ctx, id, include...)
	if err != nil || e == nil {
		return nil, err
	}
	dto := uc.mapper.ToDTO(*e)
	return &dto, nil
}

func (uc *CrudUseCase[T, C, U, D]) GetPage(ctx context.Context, criteria repository.QueryCriteria, paging utils.PagingParams) (*utils.PaginatedResult[D], error) {
	page, err := uc.repo.Query(ctx, criteria, paging)
	if err != nil {
		return nil, err
	}
	return utils.MapPaginatedResult(page, uc.mapper.ToDTO), nil
}

// Add returns nil, nil for a nil input.
func (uc *CrudUseCase[T, C, U, D]) Add(ctx context.Context, input *C) (*D, error) {
	if input == nil {
		return nil, nil
	}
	e := uc.mapper.FromCreate(*input)
	return uc.add(ctx, &e)
}

// Update returns false for a nil input or a missing record.
func (uc *CrudUseCase[T, C, U, D]) Update(ctx context.Context, input *U) (bool, error) {
	if input == nil {
		return false, nil
	}
	e := uc.mapper.FromUpdate(*input)
	return uc.repo.Update(ctx, &e)
}

func (uc *CrudUseCase[T, C, U, D]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *CrudUseCase[T, C, U, D]) add(ctx context.Context, e *T) (*D, error) {
	stored, err := uc.repo.Add(ctx, e)
	if err != nil {
		return nil, err
	}
	dto := uc.mapper.ToDTO(*stored)
	return &dto, nil
}
