package router

import (
	"github.com/labstack/echo/v4"

	"gamestore/internal/adapter/api/handler"
)

// SetupDevRouter registers the token minting endpoint only when enabled.
func SetupDevRouter(e *echo.Echo, enabled bool) {
	if !enabled {
		return
	}
	devTokenHandler := handler.GetDevTokenHandler()

	e.POST("/v1/dev/token", devTokenHandler.GenerateToken)
}
