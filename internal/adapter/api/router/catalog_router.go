package router

import (
	"github.com/labstack/echo/v4"

	"gamestore/internal/adapter/api/handler"
	"gamestore/internal/adapter/api/middleware"
)

// SetupGameRouter initializes game routes. Reads are public.
func SetupGameRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	gameHandler := handler.GetGameHandler()

	e.GET("/v1/games", gameHandler.List)
	e.GET("/v1/games/:id", gameHandler.Get)
	e.GET("/v1/games/by-key/:key", gameHandler.GetByKey)

	protected := e.Group("/v1/games", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	protected.POST("", gameHandler.Create)
	protected.PUT("/:id", gameHandler.Update)
	protected.DELETE("/:id", gameHandler.Delete)
}

func SetupGenreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	genreHandler := handler.GetGenreHandler()
	gameHandler := handler.GetGameHandler()

	e.GET("/v1/genres", genreHandler.List)
	e.GET("/v1/genres/:id", genreHandler.Get)
	e.GET("/v1/genres/:id/sub-genres", genreHandler.ListSubGenres)
	e.GET("/v1/genres/:id/games", gameHandler.ListByGenre)

	protected := e.Group("/v1/genres", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	protected.POST("", genreHandler.Create)
	protected.PUT("/:id", genreHandler.Update)
	protected.DELETE("/:id", genreHandler.Delete)
}

func SetupPlatformRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	platformHandler := handler.GetPlatformHandler()
	gameHandler := handler.GetGameHandler()

	e.GET("/v1/platforms", platformHandler.List)
	e.GET("/v1/platforms/:id", platformHandler.Get)
	e.GET("/v1/platforms/:id/games", gameHandler.ListByPlatform)

	protected := e.Group("/v1/platforms", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	protected.POST("", platformHandler.Create)
	protected.PUT("/:id", platformHandler.Update)
	protected.DELETE("/:id", platformHandler.Delete)
}

// SetupLicenseRouter initializes license routes. Every route requires a
// token and the permission matching the method.
func SetupLicenseRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, permissionMiddleware *middleware.PermissionMiddleware) {
	licenseHandler := handler.GetLicenseHandler()

	licenses := e.Group("/v1/licenses", authMiddleware.Authenticate, permissionMiddleware.ByMethod)
	licenses.GET("", licenseHandler.List)
	licenses.GET("/:id", licenseHandler.Get)
	licenses.POST("", licenseHandler.Create)
	licenses.PUT("/:id", licenseHandler.Update)
	licenses.DELETE("/:id", licenseHandler.Delete)

	e.GET("/v1/games/:id/license", licenseHandler.GetByGame, authMiddleware.Authenticate, permissionMiddleware.ByMethod)
}
