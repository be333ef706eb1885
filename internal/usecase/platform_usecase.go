package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

type CreatePlatformInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type UpdatePlatformInput struct {
	ID uuid.UUID `json:"-"`
	CreatePlatformInput
}

type PlatformDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToPlatformDTO(p entity.Platform) PlatformDTO {
	return PlatformDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

var platformMapper = Mapper[entity.Platform, CreatePlatformInput, UpdatePlatformInput, PlatformDTO]{
	FromCreate: func(in CreatePlatformInput) entity.Platform {
		p := entity.NewPlatform(in.Name)
		p.Description = in.Description
		return p
	},
	FromUpdate: func(in UpdatePlatformInput) entity.Platform {
		return entity.Platform{ID: in.ID, Name: in.Name, Description: in.Description}
	},
	ToDTO: ToPlatformDTO,
}

type PlatformUseCase struct {
	*CrudUseCase[entity.Platform, CreatePlatformInput, UpdatePlatformInput, PlatformDTO]
	platformRepo repository.PlatformRepository
}

func NewPlatformUseCase(platformRepo repository.PlatformRepository) *PlatformUseCase {
	return &PlatformUseCase{
		CrudUseCase:  NewCrudUseCase[entity.Platform](platformRepo, platformMapper),
		platformRepo: platformRepo,
	}
}

func (uc *PlatformUseCase) Add(ctx context.Context, input *CreatePlatformInput) (*PlatformDTO, error) {
	if input == nil {
		return nil, nil
	}
	if err := uc.ensureUniqueName(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}
	return uc.CrudUseCase.Add(ctx, input)
}

func (uc *PlatformUseCase) Update(ctx context.Context, input *UpdatePlatformInput) (bool, error) {
	if input == nil {
		return false, nil
	}

	exists, err := uc.platformRepo.Exists(ctx, input.ID)
	if err != nil || !exists {
		return false, err
	}
	if err := uc.ensureUniqueName(ctx, input.Name, input.ID); err != nil {
		return false, err
	}
	return uc.CrudUseCase.Update(ctx, input)
}

// ensureUniqueName rejects a name already used by another platform,
// ignoring case. self is the platform being renamed, if any.
func (uc *PlatformUseCase) ensureUniqueName(ctx context.Context, name string, self uuid.UUID) error {
	criteria := repository.QueryCriteria{}.Where("name", repository.OpEqFold, name)
	if self != uuid.Nil {
		criteria = criteria.Where("id", repository.OpNe, self)
	}

	count, err := uc.platformRepo.Count(ctx, criteria)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Validation("Platform name already exists.")
	}
	return nil
}
