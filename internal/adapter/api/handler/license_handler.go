package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/errors"
	"gamestore/pkg/response"
)

type LicenseHandler struct {
	*crudHandler[usecase.CreateLicenseInput, usecase.UpdateLicenseInput, usecase.LicenseDTO]
	licenseUseCase *usecase.LicenseUseCase
}

func NewLicenseHandler(licenseUseCase *usecase.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{
		crudHandler: &crudHandler[usecase.CreateLicenseInput, usecase.UpdateLicenseInput, usecase.LicenseDTO]{
			resource: "License",
			service:  licenseUseCase,
			filters: []queryFilter{
				{param: "game_id", field: "game_id", op: repository.OpEq, uuid: true},
			},
			setID: func(in *usecase.UpdateLicenseInput, id uuid.UUID) { in.ID = id },
		},
		licenseUseCase: licenseUseCase,
	}
}

func (h *LicenseHandler) GetByGame(c echo.Context) error {
	gameID, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	license, err := h.licenseUseCase.GetByGameID(c.Request().Context(), gameID)
	if err != nil {
		return response.Error(c, err)
	}
	if license == nil {
		return response.Error(c, errors.NotFound("License", nil))
	}
	return response.Success(c, license)
}
