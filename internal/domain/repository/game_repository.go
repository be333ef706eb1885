package repository

import (
	"context"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/pkg/utils"
)

type GameRepository interface {
	Repository[entity.Game]
	GetByKey(ctx context.Context, key string) (*entity.Game, error)
	ListByGenre(ctx context.Context, genreID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[entity.Game], error)
	ListByPlatform(ctx context.Context, platformID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[entity.Game], error)
}

// GenreRepository validates parent references on Add and Update and
// promotes children to roots when their parent is deleted.
type GenreRepository interface {
	Repository[entity.Genre]
}

type PlatformRepository interface {
	Repository[entity.Platform]
}

type LicenseRepository interface {
	Repository[entity.License]
	GetByGameID(ctx context.Context, gameID uuid.UUID) (*entity.License, error)
}
