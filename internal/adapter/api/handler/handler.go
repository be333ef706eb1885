package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/response"
)

var (
	gameHandler     *GameHandler
	genreHandler    *GenreHandler
	platformHandler *PlatformHandler
	licenseHandler  *LicenseHandler
	roleHandler     *RoleHandler
	userHandler     *UserHandler
	healthHandler   *HealthHandler
	devTokenHandler *DevTokenHandler
)

type UseCases struct {
	Game       *usecase.GameUseCase
	Genre      *usecase.GenreUseCase
	Platform   *usecase.PlatformUseCase
	License    *usecase.LicenseUseCase
	Role       *usecase.RoleUseCase
	User       *usecase.UserUseCase
	Permission *usecase.PermissionUseCase
}

func Setup(uc UseCases, db *gorm.DB, tokenIssuer usecase.TokenIssuer, userRepo repository.UserRepository) {
	gameHandler = NewGameHandler(uc.Game)
	genreHandler = NewGenreHandler(uc.Genre)
	platformHandler = NewPlatformHandler(uc.Platform)
	licenseHandler = NewLicenseHandler(uc.License)
	roleHandler = NewRoleHandler(uc.Role)
	userHandler = NewUserHandler(uc.User, uc.Permission)
	healthHandler = NewHealthHandler(db)
	devTokenHandler = NewDevTokenHandler(tokenIssuer, userRepo)
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetGenreHandler() *GenreHandler {
	return genreHandler
}

func GetPlatformHandler() *PlatformHandler {
	return platformHandler
}

func GetLicenseHandler() *LicenseHandler {
	return licenseHandler
}

func GetRoleHandler() *RoleHandler {
	return roleHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// ErrorHandler renders errors escaping handlers and middleware in the
// standard response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	_ = response.Error(c, err)
}
