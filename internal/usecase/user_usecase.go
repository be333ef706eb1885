package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

type CreateUserInput struct {
	Email    string      `json:"email" validate:"required,email,max=255"`
	Username string      `json:"username" validate:"required,min=3,max=100"`
	Status   string      `json:"status" validate:"omitempty,oneof=active inactive banned"`
	RoleIDs  []uuid.UUID `json:"role_ids"`
}

type UpdateUserInput struct {
	ID uuid.UUID `json:"-"`
	CreateUserInput
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	Roles     []RoleDTO `json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserDTO(u entity.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	for _, r := range u.Roles {
		dto.Roles = append(dto.Roles, ToRoleDTO(r))
	}
	return dto
}

func userFromInput(id uuid.UUID, in CreateUserInput) entity.User {
	u := entity.User{
		ID:       id,
		Email:    strings.TrimSpace(in.Email),
		Username: in.Username,
		Status:   in.Status,
	}
	if u.Status == "" {
		u.Status = "active"
	}
	for _, roleID := range in.RoleIDs {
		u.Roles = append(u.Roles, entity.Role{ID: roleID})
	}
	return u
}

var userMapper = Mapper[entity.User, CreateUserInput, UpdateUserInput, UserDTO]{
	FromCreate: func(in CreateUserInput) entity.User { return userFromInput(uuid.New(), in) },
	FromUpdate: func(in UpdateUserInput) entity.User { return userFromInput(in.ID, in.CreateUserInput) },
	ToDTO:      ToUserDTO,
}

type UserUseCase struct {
	*CrudUseCase[entity.User, CreateUserInput, UpdateUserInput, UserDTO]
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{
		CrudUseCase: NewCrudUseCase[entity.User](userRepo, userMapper),
		userRepo:    userRepo,
		roleRepo:    roleRepo,
	}
}

func (uc *UserUseCase) Add(ctx context.Context, input *CreateUserInput) (*UserDTO, error) {
	if input == nil {
		return nil, nil
	}
	if err := uc.validate(ctx, *input, uuid.Nil); err != nil {
		return nil, err
	}
	return uc.CrudUseCase.Add(ctx, input)
}

func (uc *UserUseCase) Update(ctx context.Context, input *UpdateUserInput) (bool, error) {
	if input == nil {
		return false, nil
	}

	exists, err := uc.userRepo.Exists(ctx, input.ID)
	if err != nil || !exists {
		return false, err
	}
	if err := uc.validate(ctx, input.CreateUserInput, input.ID); err != nil {
		return false, err
	}
	return uc.CrudUseCase.Update(ctx, input)
}

func (uc *UserUseCase) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	if err := requireExisting(ctx, uc.userRepo, "User", userID); err != nil {
		return err
	}
	if err := requireExisting(ctx, uc.roleRepo, "Role", roleID); err != nil {
		return err
	}
	return uc.userRepo.AssignRole(ctx, userID, roleID)
}

// RemoveRole reports false when the user did not hold the role.
func (uc *UserUseCase) RemoveRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	return uc.userRepo.RemoveRole(ctx, userID, roleID)
}

func (uc *UserUseCase) validate(ctx context.Context, input CreateUserInput, self uuid.UUID) error {
	existing, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return errors.Conflict("Email already registered")
	}

	for _, id := range input.RoleIDs {
		if err := requireExisting(ctx, uc.roleRepo, "Role", id); err != nil {
			return err
		}
	}
	return nil
}
