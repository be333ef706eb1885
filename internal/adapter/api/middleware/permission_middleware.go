package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/entity"
	"gamestore/internal/usecase"
	"gamestore/pkg/response"
)

type PermissionMiddleware struct {
	permissionUseCase *usecase.PermissionUseCase
}

func NewPermissionMiddleware(permissionUseCase *usecase.PermissionUseCase) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionUseCase: permissionUseCase,
	}
}

// Require rejects callers lacking any of the given permissions.
func (m *PermissionMiddleware) Require(perms ...entity.PermissionType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.permissionUseCase.Authorize(c.Request().Context(), UserID(c), perms...); err != nil {
				return response.Error(c, err)
			}
			return next(c)
		}
	}
}

// ByMethod requires Read for GET, Create for POST, Update for PUT and
// Delete for DELETE.
func (m *PermissionMiddleware) ByMethod(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		perm, ok := methodPermissions[c.Request().Method]
		if !ok {
			return next(c)
		}
		return m.Require(perm)(next)(c)
	}
}

var methodPermissions = map[string]entity.PermissionType{
	http.MethodGet:    entity.PermissionRead,
	http.MethodHead:   entity.PermissionRead,
	http.MethodPost:   entity.PermissionCreate,
	http.MethodPut:    entity.PermissionUpdate,
	http.MethodPatch:  entity.PermissionUpdate,
	http.MethodDelete: entity.PermissionDelete,
}
