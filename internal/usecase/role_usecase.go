package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

type CreateRoleInput struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"max=500"`
	Permissions []string `json:"permissions" validate:"dive,oneof=Read Create Update Delete"`
}

type UpdateRoleInput struct {
	ID uuid.UUID `json:"-"`
	CreateRoleInput
}

type RoleDTO struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Permissions []entity.PermissionType `json:"permissions,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func ToRoleDTO(r entity.Role) RoleDTO {
	set := entity.NewPermissionSet()
	for _, p := range r.Permissions {
		set.Add(p.Name)
	}
	return RoleDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: set.Slice(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

var roleMapper = Mapper[entity.Role, CreateRoleInput, UpdateRoleInput, RoleDTO]{
	FromCreate: func(in CreateRoleInput) entity.Role {
		r := entity.NewRole(in.Name)
		r.Description = in.Description
		return r
	},
	FromUpdate: func(in UpdateRoleInput) entity.Role {
		return entity.Role{ID: in.ID, Name: in.Name, Description: in.Description}
	},
	ToDTO: ToRoleDTO,
}

type RoleUseCase struct {
	*CrudUseCase[entity.Role, CreateRoleInput, UpdateRoleInput, RoleDTO]
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

func NewRoleUseCase(roleRepo repository.RoleRepository, permissionRepo repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{
		CrudUseCase:    NewCrudUseCase[entity.Role](roleRepo, roleMapper),
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

func (uc *RoleUseCase) Add(ctx context.Context, input *CreateRoleInput) (*RoleDTO, error) {
	if input == nil {
		return nil, nil
	}
	perms, err := uc.resolvePermissions(ctx, input.Permissions)
	if err != nil {
		return nil, err
	}

	role := roleMapper.FromCreate(*input)
	role.Permissions = perms
	return uc.add(ctx, &role)
}

func (uc *RoleUseCase) Update(ctx context.Context, input *UpdateRoleInput) (bool, error) {
	if input == nil {
		return false, nil
	}
	perms, err := uc.resolvePermissions(ctx, input.Permissions)
	if err != nil {
		return false, err
	}

	role := roleMapper.FromUpdate(*input)
	role.Permissions = perms
	return uc.roleRepo.Update(ctx, &role)
}

// resolvePermissions maps permission names to their stored rows.
func (uc *RoleUseCase) resolvePermissions(ctx context.Context, names []string) ([]entity.Permission, error) {
	types := make([]entity.PermissionType, 0, len(names))
	for _, name := range names {
		p, ok := entity.ParsePermissionType(name)
		if !ok {
			return nil, errors.Validation(fmt.Sprintf("unknown permission %q", name))
		}
		types = append(types, p)
	}

	perms, err := uc.permissionRepo.ListByNames(ctx, types)
	if err != nil {
		return nil, err
	}
	found := entity.NewPermissionSet()
	for _, p := range perms {
		found.Add(p.Name)
	}
	if missing := found.Missing(types...); len(missing) > 0 {
		return nil, errors.NotFound(fmt.Sprintf("Permission %s", missing[0]), nil)
	}
	return perms, nil
}
