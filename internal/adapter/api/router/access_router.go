package router

import (
	"github.com/labstack/echo/v4"

	"gamestore/internal/adapter/api/handler"
	"gamestore/internal/adapter/api/middleware"
	"gamestore/internal/domain/entity"
)

func SetupRoleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	roleHandler := handler.GetRoleHandler()

	roles := e.Group("/v1/roles", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.POST("", roleHandler.Create)
	roles.PUT("/:id", roleHandler.Update)
	roles.DELETE("/:id", roleHandler.Delete)
}

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	userHandler := handler.GetUserHandler()

	// Any authenticated user may see their own permissions
	e.GET("/v1/me/permissions", userHandler.Me, authMiddleware.Authenticate)

	users := e.Group("/v1/users", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/permissions", userHandler.GetPermissions)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// Changing role assignments edits the user, whatever the method
	assignments := e.Group("/v1/users/:id/roles", authMiddleware.Authenticate, permissionMiddleware.Require(entity.PermissionUpdate))
	assignments.POST("/:roleId", userHandler.AssignRole)
	assignments.DELETE("/:roleId", userHandler.RemoveRole)
}
