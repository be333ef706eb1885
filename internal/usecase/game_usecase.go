package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/utils"
)

type CreateGameInput struct {
	Name         string      `json:"name" validate:"required,max=200"`
	Key          string      `json:"key" validate:"required,max=200"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" validate:"gte=0"`
	UnitsInStock int         `json:"units_in_stock" validate:"gte=0"`
	Discount     int         `json:"discount" validate:"gte=0,lte=100"`
	GenreIDs     []uuid.UUID `json:"genre_ids"`
	PlatformIDs  []uuid.UUID `json:"platform_ids"`
}

type UpdateGameInput struct {
	ID uuid.UUID `json:"-"`
	CreateGameInput
}

type GameDTO struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Key          string        `json:"key"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price"`
	UnitsInStock int           `json:"units_in_stock"`
	Discount     int           `json:"discount"`
	Genres       []GenreDTO    `json:"genres,omitempty"`
	Platforms    []PlatformDTO `json:"platforms,omitempty"`
	License      *LicenseDTO   `json:"license,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func ToGameDTO(g entity.Game) GameDTO {
	dto := GameDTO{
		ID:           g.ID,
		Name:         g.Name,
		Key:          g.Key,
		Description:  g.Description,
		Price:        g.Price,
		UnitsInStock: g.UnitsInStock,
		Discount:     g.Discount,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
	for _, genre := range g.Genres {
		dto.Genres = append(dto.Genres, ToGenreDTO(genre))
	}
	for _, p := range g.Platforms {
		dto.Platforms = append(dto.Platforms, ToPlatformDTO(p))
	}
	if g.License != nil {
		l := ToLicenseDTO(*g.License)
		dto.License = &l
	}
	return dto
}

func gameFromInput(id uuid.UUID, in CreateGameInput) entity.Game {
	g := entity.Game{
		ID:           id,
		Name:         in.Name,
		Key:          in.Key,
		Description:  in.Description,
		Price:        in.Price,
		UnitsInStock: in.UnitsInStock,
		Discount:     in.Discount,
	}
	// Only the ids matter when the relations are written.
	for _, genreID := range in.GenreIDs {
		g.Genres = append(g.Genres, entity.Genre{ID: genreID})
	}
	for _, platformID := range in.PlatformIDs {
		g.Platforms = append(g.Platforms, entity.Platform{ID: platformID})
	}
	return g
}

var gameMapper = Mapper[entity.Game, CreateGameInput, UpdateGameInput, GameDTO]{
	FromCreate: func(in CreateGameInput) entity.Game { return gameFromInput(uuid.New(), in) },
	FromUpdate: func(in UpdateGameInput) entity.Game { return gameFromInput(in.ID, in.CreateGameInput) },
	ToDTO:      ToGameDTO,
}

type GameUseCase struct {
	*CrudUseCase[entity.Game, CreateGameInput, UpdateGameInput, GameDTO]
	gameRepo     repository.GameRepository
	genreRepo    repository.GenreRepository
	platformRepo repository.PlatformRepository
}

func NewGameUseCase(
	gameRepo repository.GameRepository,
	genreRepo repository.GenreRepository,
	platformRepo repository.PlatformRepository,
) *GameUseCase {
	return &GameUseCase{
		CrudUseCase:  NewCrudUseCase[entity.Game](gameRepo, gameMapper),
		gameRepo:     gameRepo,
		genreRepo:    genreRepo,
		platformRepo: platformRepo,
	}
}

func (uc *GameUseCase) Add(ctx context.Context, input *CreateGameInput) (*GameDTO, error) {
	if input == nil {
		return nil, nil
	}
	if err := uc.validate(ctx, *input, uuid.Nil); err != nil {
		return nil, err
	}
	return uc.CrudUseCase.Add(ctx, input)
}

func (uc *GameUseCase) Update(ctx context.Context, input *UpdateGameInput) (bool, error) {
	if input == nil {
		return false, nil
	}

	exists, err := uc.gameRepo.Exists(ctx, input.ID)
	if err != nil || !exists {
		return false, err
	}
	if err := uc.validate(ctx, input.CreateGameInput, input.ID); err != nil {
		return false, err
	}
	return uc.CrudUseCase.Update(ctx, input)
}

func (uc *GameUseCase) GetByKey(ctx context.Context, key string) (*GameDTO, error) {
	g, err := uc.gameRepo.GetByKey(ctx, key)
	if err != nil || g == nil {
		return nil, err
	}
	dto := ToGameDTO(*g)
	return &dto, nil
}

func (uc *GameUseCase) ListByGenre(ctx context.Context, genreID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[GameDTO], error) {
	if err := requireExisting(ctx, uc.genreRepo, "Genre", genreID); err != nil {
		return nil, err
	}
	page, err := uc.gameRepo.ListByGenre(ctx, genreID, paging)
	if err != nil {
		return nil, err
	}
	return utils.MapPaginatedResult(page, ToGameDTO), nil
}

func (uc *GameUseCase) ListByPlatform(ctx context.Context, platformID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[GameDTO], error) {
	if err := requireExisting(ctx, uc.platformRepo, "Platform", platformID); err != nil {
		return nil, err
	}
	page, err := uc.gameRepo.ListByPlatform(ctx, platformID, paging)
	if err != nil {
		return nil, err
	}
	return utils.MapPaginatedResult(page, ToGameDTO), nil
}

// validate checks the key is free and every referenced genre and platform
// exists. self is the game being updated, if any.
func (uc *GameUseCase) validate(ctx context.Context, input CreateGameInput, self uuid.UUID) error {
	existing, err := uc.gameRepo.GetByKey(ctx, input.Key)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return errors.Conflict("Game key already exists")
	}

	for _, id := range input.GenreIDs {
		if err := requireExisting(ctx, uc.genreRepo, "Genre", id); err != nil {
			return err
		}
	}
	for _, id := range input.PlatformIDs {
		if err := requireExisting(ctx, uc.platformRepo, "Platform", id); err != nil {
			return err
		}
	}
	return nil
}

type existenceChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

func requireExisting(ctx context.Context, repo existenceChecker, resource string, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(resource, nil)
	}
	return nil
}
