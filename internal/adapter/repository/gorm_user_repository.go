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

type gormUserRepository struct {
	*gormRepository[entity.User]
}

func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &gormUserRepository{
		gormRepository: newGormRepository[entity.User](db, "user",
			withManyToMany(&entity.UserRole{}, "user_id", "role_id", func(u *entity.User) []uuid.UUID {
				ids := make([]uuid.UUID, 0, len(u.Roles))
				for _, role := range u.Roles {
					ids = append(ids, role.ID)
				}
				return ids
			}),
		),
	}
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, repository.Where("email", repository.OpEqFold, email))
}

func (r *gormUserRepository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.UserRole{UserID: userID, RoleID: roleID}).Error
	if err != nil {
		return errors.Internal("Failed to assign role", err)
	}
	return nil
}

func (r *gormUserRepository) RemoveRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&entity.UserRole{})
	if res.Error != nil {
		return false, errors.Internal("Failed to remove role", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormUserRepository) EnsureUser(ctx context.Context, user *entity.User) (bool, error) {
	if user == nil {
		return false, errors.Validation("user must not be nil")
	}

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
			Create(user)
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		created = true
		return r.writeRelations(tx, user)
	})
	if err != nil {
		return false, r.translate("create", err)
	}
	return created, nil
}
