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

type CreateGenreInput struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=1000"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateGenreInput struct {
	ID uuid.UUID `json:"-"`
	CreateGenreInput
}

type GenreDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	SubGenres   []GenreDTO `json:"sub_genres,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToGenreDTO(g entity.Genre) GenreDTO {
	dto := GenreDTO{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		ParentID:    g.ParentID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	for _, sub := range g.SubGenres {
		dto.SubGenres = append(dto.SubGenres, ToGenreDTO(sub))
	}
	return dto
}

var genreMapper = Mapper[entity.Genre, CreateGenreInput, UpdateGenreInput, GenreDTO]{
	FromCreate: func(in CreateGenreInput) entity.Genre {
		g := entity.NewGenre(in.Name, in.ParentID)
		g.Description = in.Description
		return g
	},
	FromUpdate: func(in UpdateGenreInput) entity.Genre {
		return entity.Genre{ID: in.ID, Name: in.Name, Description: in.Description, ParentID: in.ParentID}
	},
	ToDTO: ToGenreDTO,
}

// GenreUseCase leaves parent validation and orphan promotion to the
// GenreRepository.
type GenreUseCase struct {
	*CrudUseCase[entity.Genre, CreateGenreInput, UpdateGenreInput, GenreDTO]
	genreRepo repository.GenreRepository
}

func NewGenreUseCase(genreRepo repository.GenreRepository) *GenreUseCase {
	return &GenreUseCase{
		CrudUseCase: NewCrudUseCase[entity.Genre](genreRepo, genreMapper),
		genreRepo:   genreRepo,
	}
}

// ListSubGenres pages through the direct children of a genre.
func (uc *GenreUseCase) ListSubGenres(ctx context.Context, parentID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[GenreDTO], error) {
	exists, err := uc.genreRepo.Exists(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound("Genre", nil)
	}

	criteria := repository.QueryCriteria{}.Where("parent_id", repository.OpEq, parentID)
	return uc.GetPage(ctx, criteria, paging)
}
