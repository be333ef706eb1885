package handler

import (
	"github.com/google/uuid"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
)

type PlatformHandler struct {
	*crudHandler[usecase.CreatePlatformInput, usecase.UpdatePlatformInput, usecase.PlatformDTO]
}

func NewPlatformHandler(platformUseCase *usecase.PlatformUseCase) *PlatformHandler {
	return &PlatformHandler{
		crudHandler: &crudHandler[usecase.CreatePlatformInput, usecase.UpdatePlatformInput, usecase.PlatformDTO]{
			resource: "Platform",
			service:  platformUseCase,
			filters: []queryFilter{
				{param: "search", field: "name", op: repository.OpLike},
			},
			setID: func(in *usecase.UpdatePlatformInput, id uuid.UUID) { in.ID = id },
		},
	}
}
