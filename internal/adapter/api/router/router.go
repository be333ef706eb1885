package router

import (
	"github.com/labstack/echo/v4"

	"gamestore/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	SetupGameRouter(e, authMiddleware, permissionMiddleware)
	SetupGenreRouter(e, authMiddleware, permissionMiddleware)
	SetupPlatformRouter(e, authMiddleware, permissionMiddleware)
	SetupLicenseRouter(e, authMiddleware, permissionMiddleware)
	SetupRoleRouter(e, authMiddleware, permissionMiddleware)
	SetupUserRouter(e, authMiddleware, permissionMiddleware)
	SetupHealthRouter(e)
}
