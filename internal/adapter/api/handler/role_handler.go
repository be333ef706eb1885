package handler

import (
	"github.com/google/uuid"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
)

type RoleHandler struct {
	*crudHandler[usecase.CreateRoleInput, usecase.UpdateRoleInput, usecase.RoleDTO]
}

func NewRoleHandler(roleUseCase *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{
		crudHandler: &crudHandler[usecase.CreateRoleInput, usecase.UpdateRoleInput, usecase.RoleDTO]{
			resource: "Role",
			service:  roleUseCase,
			filters: []queryFilter{
				{param: "search", field: "name", op: repository.OpLike},
			},
			setID: func(in *usecase.UpdateRoleInput, id uuid.UUID) { in.ID = id },
		},
	}
}
