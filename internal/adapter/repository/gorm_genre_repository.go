package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/logger"
)

type gormGenreRepository struct {
	*gormRepository[entity.Genre]
}

func NewGormGenreRepository(db *gorm.DB) repository.GenreRepository {
	return &gormGenreRepository{
		gormRepository: newGormRepository[entity.Genre](db, "genre",
			withDeleteCascade[entity.Genre](&entity.GameGenre{}, "genre_id"),
		),
	}
}

func (r *gormGenreRepository) Add(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	if genre == nil {
		return nil, errors.Validation("genre must not be nil")
	}
	if err := r.validateParent(ctx, genre); err != nil {
		return nil, err
	}
	return r.gormRepository.Add(ctx, genre)
}

func (r *gormGenreRepository) Update(ctx context.Context, genre *entity.Genre) (bool, error) {
	if genre == nil {
		return false, errors.Validation("genre must not be nil")
	}

	exists, err := r.Exists(ctx, genre.ID)
	if err != nil || !exists {
		return false, err
	}
	if err := r.validateParent(ctx, genre); err != nil {
		return false, err
	}
	return r.gormRepository.Update(ctx, genre)
}

// Delete removes the genre and turns its direct children into root genres.
func (r *gormGenreRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.deleteWith(ctx, id, func(tx *gorm.DB) error {
		res := tx.Model(&entity.Genre{}).Where("parent_id = ?", id).Update("parent_id", nil)
		if res.Error == nil && res.RowsAffected > 0 {
			logger.Debug("Genre %s deleted, promoted %d child genres to root", id, res.RowsAffected)
		}
		return res.Error
	})
}

// validateParent accepts a nil parent and otherwise requires an existing
// genre that does not have the genre itself among its ancestors.
func (r *gormGenreRepository) validateParent(ctx context.Context, genre *entity.Genre) error {
	if genre.ParentID == nil {
		return nil
	}
	if *genre.ParentID == uuid.Nil {
		return errors.Validation("parent genre id must not be empty")
	}

	seen := map[uuid.UUID]struct{}{}
	next := *genre.ParentID
	for {
		if next == genre.ID {
			return errors.Validation("genre cannot be its own ancestor")
		}
		if _, loop := seen[next]; loop {
			return nil
		}
		seen[next] = struct{}{}

		ancestor, err := r.GetByID(ctx, next)
		if err != nil {
			return err
		}
		if ancestor == nil {
			if next == *genre.ParentID {
				return errors.NotFound("Parent genre", nil)
			}
			return nil
		}
		if ancestor.ParentID == nil {
			return nil
		}
		next = *ancestor.ParentID
	}
}
