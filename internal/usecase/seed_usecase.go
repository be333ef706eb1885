package usecase

import (
	"context"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/logger"
)

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

var defaultRoles = []struct {
	name        string
	description string
	permissions []entity.PermissionType
}{
	{RoleAdmin, "Full access to the catalog", entity.AllPermissions},
	{RoleManager, "Maintains the catalog", []entity.PermissionType{entity.PermissionRead, entity.PermissionCreate, entity.PermissionUpdate}},
	{RoleUser, "Read-only access", []entity.PermissionType{entity.PermissionRead}},
}

type SeedInput struct {
	AdminEmail    string
	AdminUsername string
}

// SeedUseCase creates the fixed permissions and roles, and optionally an
// admin user. Every insert is skipped when the row already exists, so
// concurrent instances can seed the same database at startup.
type SeedUseCase struct {
	permissionRepo repository.PermissionRepository
	roleRepo       repository.RoleRepository
	userRepo       repository.UserRepository
}

func NewSeedUseCase(
	permissionRepo repository.PermissionRepository,
	roleRepo repository.RoleRepository,
	userRepo repository.UserRepository,
) *SeedUseCase {
	return &SeedUseCase{
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		userRepo:       userRepo,
	}
}

func (uc *SeedUseCase) Run(ctx context.Context, input SeedInput) error {
	if err := uc.permissionRepo.EnsurePermissions(ctx, entity.AllPermissions); err != nil {
		return err
	}

	for _, def := range defaultRoles {
		perms, err := uc.permissionRepo.ListByNames(ctx, def.permissions)
		if err != nil {
			return err
		}

		role := entity.NewRole(def.name)
		role.Description = def.description
		role.Permissions = perms
		created, err := uc.roleRepo.EnsureRole(ctx, &role)
		if err != nil {
			return err
		}
		if created {
			logger.Info("Seeded role %s", def.name)
		}
	}

	if input.AdminEmail == "" {
		return nil
	}
	return uc.seedAdmin(ctx, input)
}

func (uc *SeedUseCase) seedAdmin(ctx context.Context, input SeedInput) error {
	admin, err := uc.roleRepo.GetByName(ctx, RoleAdmin)
	if err != nil {
		return err
	}

	user := entity.NewUser(input.AdminEmail, input.AdminUsername)
	if admin != nil {
		user.Roles = []entity.Role{*admin}
	}
	created, err := uc.userRepo.EnsureUser(ctx, &user)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Seeded admin user %s", input.AdminEmail)
	}
	return nil
}
