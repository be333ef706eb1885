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

type gormRoleRepository struct {
	*gormRepository[entity.Role]
}

func NewGormRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &gormRoleRepository{
		gormRepository: newGormRepository[entity.Role](db, "role",
			withManyToMany(&entity.RolePermission{}, "role_id", "permission_id", func(role *entity.Role) []uuid.UUID {
				ids := make([]uuid.UUID, 0, len(role.Permissions))
				for _, p := range role.Permissions {
					ids = append(ids, p.ID)
				}
				return ids
			}),
			withDeleteCascade[entity.Role](&entity.UserRole{}, "role_id"),
		),
	}
}

func (r *gormRoleRepository) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	return r.first(ctx, repository.Where("name", repository.OpEqFold, name))
}

// EnsureRole relies on the unique role name so concurrent seeders insert
// the role exactly once.
func (r *gormRoleRepository) EnsureRole(ctx context.Context, role *entity.Role) (bool, error) {
	if role == nil {
		return false, errors.Validation("role must not be nil")
	}

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(role)
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		created = true
		return r.writeRelations(tx, role)
	})
	if err != nil {
		return false, r.translate("create", err)
	}
	return created, nil
}
