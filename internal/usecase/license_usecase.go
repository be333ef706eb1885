package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

type CreateLicenseInput struct {
	GameID    uuid.UUID  `json:"game_id" validate:"required"`
	Key       string     `json:"key" validate:"required,max=200"`
	Price     float64    `json:"price" validate:"gte=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UpdateLicenseInput struct {
	ID uuid.UUID `json:"-"`
	CreateLicenseInput
}

type LicenseDTO struct {
	ID        uuid.UUID  `json:"id"`
	GameID    uuid.UUID  `json:"game_id"`
	Key       string     `json:"key"`
	Price     float64    `json:"price"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToLicenseDTO(l entity.License) LicenseDTO {
	return LicenseDTO{
		ID:        l.ID,
		GameID:    l.GameID,
		Key:       l.Key,
		Price:     l.Price,
		ExpiresAt: l.ExpiresAt,
		Expired:   l.IsExpired(time.Now()),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

var licenseMapper = Mapper[entity.License, CreateLicenseInput, UpdateLicenseInput, LicenseDTO]{
	FromCreate: func(in CreateLicenseInput) entity.License {
		l := entity.NewLicense(in.GameID, in.Key)
		l.Price = in.Price
		l.ExpiresAt = in.ExpiresAt
		return l
	},
	FromUpdate: func(in UpdateLicenseInput) entity.License {
		return entity.License{
			ID:        in.ID,
			GameID:    in.GameID,
			Key:       in.Key,
			Price:     in.Price,
			ExpiresAt: in.ExpiresAt,
		}
	},
	ToDTO: ToLicenseDTO,
}

type LicenseUseCase struct {
	*CrudUseCase[entity.License, CreateLicenseInput, UpdateLicenseInput, LicenseDTO]
	licenseRepo repository.LicenseRepository
	gameRepo    repository.GameRepository
}

func NewLicenseUseCase(licenseRepo repository.LicenseRepository, gameRepo repository.GameRepository) *LicenseUseCase {
	return &LicenseUseCase{
		CrudUseCase: NewCrudUseCase[entity.License](licenseRepo, licenseMapper),
		licenseRepo: licenseRepo,
		gameRepo:    gameRepo,
	}
}

func (uc *LicenseUseCase) Add(ctx context.Context, input *CreateLicenseInput) (*LicenseDTO, error) {
	if input == nil {
		return nil, nil
	}
	if err := uc.ensureGameUnlicensed(ctx, input.GameID, uuid.Nil); err != nil {
		return nil, err
	}
	return uc.CrudUseCase.Add(ctx, input)
}

func (uc *LicenseUseCase) Update(ctx context.Context, input *UpdateLicenseInput) (bool, error) {
	if input == nil {
		return false, nil
	}

	current, err := uc.licenseRepo.GetByID(ctx, input.ID)
	if err != nil || current == nil {
		return false, err
	}
	if current.GameID != input.GameID {
		if err := uc.ensureGameUnlicensed(ctx, input.GameID, input.ID); err != nil {
			return false, err
		}
	}
	return uc.CrudUseCase.Update(ctx, input)
}

func (uc *LicenseUseCase) GetByGameID(ctx context.Context, gameID uuid.UUID) (*LicenseDTO, error) {
	l, err := uc.licenseRepo.GetByGameID(ctx, gameID)
	if err != nil || l == nil {
		return nil, err
	}
	dto := ToLicenseDTO(*l)
	return &dto, nil
}

// ensureGameUnlicensed requires the game to exist and to have no license
// other than self.
func (uc *LicenseUseCase) ensureGameUnlicensed(ctx context.Context, gameID, self uuid.UUID) error {
	exists, err := uc.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Game", nil)
	}

	existing, err := uc.licenseRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return errors.Conflict("Game already has a license")
	}
	return nil
}
