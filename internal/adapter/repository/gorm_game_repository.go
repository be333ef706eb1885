package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/utils"
)

type gormGameRepository struct {
	*gormRepository[entity.Game]
}

func NewGormGameRepository(db *gorm.DB) repository.GameRepository {
	return &gormGameRepository{
		gormRepository: newGormRepository[entity.Game](db, "game",
			withManyToMany(&entity.GameGenre{}, "game_id", "genre_id", func(g *entity.Game) []uuid.UUID {
				ids := make([]uuid.UUID, 0, len(g.Genres))
				for _, genre := range g.Genres {
					ids = append(ids, genre.ID)
				}
				return ids
			}),
			withManyToMany(&entity.GamePlatform{}, "game_id", "platform_id", func(g *entity.Game) []uuid.UUID {
				ids := make([]uuid.UUID, 0, len(g.Platforms))
				for _, p := range g.Platforms {
					ids = append(ids, p.ID)
				}
				return ids
			}),
			withDeleteCascade[entity.Game](&entity.License{}, "game_id"),
		),
	}
}

func (r *gormGameRepository) GetByKey(ctx context.Context, key string) (*entity.Game, error) {
	return r.first(ctx, repository.Where("key", repository.OpEq, key))
}

func (r *gormGameRepository) ListByGenre(ctx context.Context, genreID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[entity.Game], error) {
	return r.query(ctx, repository.QueryCriteria{}, paging, r.linkedTo(&entity.GameGenre{}, "genre_id", genreID))
}

func (r *gormGameRepository) ListByPlatform(ctx context.Context, platformID uuid.UUID, paging utils.PagingParams) (*utils.PaginatedResult[entity.Game], error) {
	return r.query(ctx, repository.QueryCriteria{}, paging, r.linkedTo(&entity.GamePlatform{}, "platform_id", platformID))
}

// linkedTo restricts games to those with a join row pointing at target.
func (r *gormGameRepository) linkedTo(join interface{}, column string, target uuid.UUID) scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := r.db.Session(&gorm.Session{NewDB: true}).Model(join).Select("game_id").Where(column+" = ?", target)
		return db.Where("id IN (?)", sub)
	}
}
