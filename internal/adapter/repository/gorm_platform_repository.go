package repository

import (
	"gorm.io/gorm"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
)

type gormPlatformRepository struct {
	*gormRepository[entity.Platform]
}

func NewGormPlatformRepository(db *gorm.DB) repository.PlatformRepository {
	return &gormPlatformRepository{
		gormRepository: newGormRepository[entity.Platform](db, "platform",
			withDeleteCascade[entity.Platform](&entity.GamePlatform{}, "platform_id"),
		),
	}
}
