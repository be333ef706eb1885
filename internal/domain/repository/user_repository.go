package repository

import (
	"context"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
)

type UserRepository interface {
	Repository[entity.User]
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) error
	RemoveRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error)
	// EnsureUser inserts the user unless one with the same email exists.
	EnsureUser(ctx context.Context, user *entity.User) (created bool, err error)
}

type RoleRepository interface {
	Repository[entity.Role]
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	// EnsureRole inserts the role with its permissions unless a role with
	// the same name exists.
	EnsureRole(ctx context.Context, role *entity.Role) (created bool, err error)
}

type PermissionRepository interface {
	// ListByUserID walks user_roles -> role_permissions -> permissions and
	// returns each distinct permission once.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Permission, error)
	ListByNames(ctx context.Context, names []entity.PermissionType) ([]entity.Permission, error)
	EnsurePermissions(ctx context.Context, names []entity.PermissionType) error
}
