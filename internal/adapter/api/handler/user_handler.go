package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/adapter/api/middleware"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/errors"
	"gamestore/pkg/response"
)

type UserHandler struct {
	*crudHandler[usecase.CreateUserInput, usecase.UpdateUserInput, usecase.UserDTO]
	userUseCase       *usecase.UserUseCase
	permissionUseCase *usecase.PermissionUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, permissionUseCase *usecase.PermissionUseCase) *UserHandler {
	return &UserHandler{
		crudHandler: &crudHandler[usecase.CreateUserInput, usecase.UpdateUserInput, usecase.UserDTO]{
			resource: "User",
			service:  userUseCase,
			filters: []queryFilter{
				{param: "search", field: "username", op: repository.OpLike},
				{param: "email", field: "email", op: repository.OpEqFold},
				{param: "status", field: "status", op: repository.OpEq},
			},
			setID: func(in *usecase.UpdateUserInput, id uuid.UUID) { in.ID = id },
		},
		userUseCase:       userUseCase,
		permissionUseCase: permissionUseCase,
	}
}

func (h *UserHandler) AssignRole(c echo.Context) error {
	userID, roleID, err := parseUserRole(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.AssignRole(c.Request().Context(), userID, roleID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Role assigned successfully",
	})
}

func (h *UserHandler) RemoveRole(c echo.Context) error {
	userID, roleID, err := parseUserRole(c)
	if err != nil {
		return response.Error(c, err)
	}

	ok, err := h.userUseCase.RemoveRole(c.Request().Context(), userID, roleID)
	if err != nil {
		return response.Error(c, err)
	}
	if !ok {
		return response.Error(c, errors.NotFound("Role assignment", nil))
	}
	return response.Success(c, map[string]string{
		"message": "Role removed successfully",
	})
}

func (h *UserHandler) GetPermissions(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	return h.permissionsOf(c, userID)
}

// Me returns the caller's own effective permissions.
func (h *UserHandler) Me(c echo.Context) error {
	return h.permissionsOf(c, middleware.UserID(c))
}

func (h *UserHandler) permissionsOf(c echo.Context, userID uuid.UUID) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), userID, "roles")
	if err != nil {
		return response.Error(c, err)
	}
	if user == nil {
		return response.Error(c, errors.NotFound("User", nil))
	}

	perms, err := h.permissionUseCase.GetPermissions(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"user":        user,
		"permissions": perms.Slice(),
	})
}

func parseUserRole(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := parseID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	roleID, err := parseID(c, "roleId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, roleID, nil
}
