package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
)

type gormLicenseRepository struct {
	*gormRepository[entity.License]
}

func NewGormLicenseRepository(db *gorm.DB) repository.LicenseRepository {
	return &gormLicenseRepository{
		gormRepository: newGormRepository[entity.License](db, "license"),
	}
}

func (r *gormLicenseRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) (*entity.License, error) {
	return r.first(ctx, repository.Where("game_id", repository.OpEq, gameID))
}
