package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

type gormPermissionRepository struct {
	db *gorm.DB
}

func NewGormPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &gormPermissionRepository{db: db}
}

func (r *gormPermissionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Permission, error) {
	var perms []entity.Permission
	err := r.db.WithContext(ctx).Raw(`SELECT DISTINCT p.* FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN user_roles ur ON ur.role_id = rp.role_id
		WHERE ur.user_id = ?
		ORDER BY p.name`, userID).Scan(&perms).Error
	if err != nil {
		return nil, errors.Internal("Failed to resolve user permissions", err)
	}
	return perms, nil
}

func (r *gormPermissionRepository) ListByNames(ctx context.Context, names []entity.PermissionType) ([]entity.Permission, error) {
	perms := make([]entity.Permission, 0, len(names))
	if len(names) == 0 {
		return perms, nil
	}
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Order("name").Find(&perms).Error; err != nil {
		return nil, errors.Internal("Failed to list permissions", err)
	}
	return perms, nil
}

func (r *gormPermissionRepository) EnsurePermissions(ctx context.Context, names []entity.PermissionType) error {
	if len(names) == 0 {
		return nil
	}

	rows := make([]entity.Permission, 0, len(names))
	for _, name := range names {
		rows = append(rows, entity.NewPermission(name))
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return errors.Internal("Failed to seed permissions", err)
	}
	return nil
}
