package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/logger"
)

// PermissionUseCase resolves the effective permissions of a user and
// authorizes actions against them.
type PermissionUseCase struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
}

func NewPermissionUseCase(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository) *PermissionUseCase {
	return &PermissionUseCase{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
	}
}

// GetPermissions returns the union of the permissions of every role held by
// the user. A user without roles has an empty set.
func (uc *PermissionUseCase) GetPermissions(ctx context.Context, userID uuid.UUID) (entity.PermissionSet, error) {
	perms, err := uc.permissionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := entity.NewPermissionSet()
	for _, p := range perms {
		t, ok := entity.ParsePermissionType(string(p.Name))
		if !ok {
			logger.Warn("Skipping unknown permission %q granted to user %s", p.Name, userID)
			continue
		}
		set.Add(t)
	}
	return set, nil
}

// Authorize fails with Unauthenticated when the caller is not a known user
// and with Forbidden when any required permission is missing.
func (uc *PermissionUseCase) Authorize(ctx context.Context, userID uuid.UUID, required ...entity.PermissionType) error {
	if userID == uuid.Nil {
		return errors.Unauthorized("Authentication required", nil)
	}
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Unauthorized("Unknown user", nil)
	}

	granted, err := uc.GetPermissions(ctx, userID)
	if err != nil {
		return err
	}
	if missing := granted.Missing(required...); len(missing) > 0 {
		return errors.Forbidden(fmt.Sprintf("Missing permission: %s", missing[0]), nil)
	}
	return nil
}
