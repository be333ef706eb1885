package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gamestore/internal/adapter/api"
	"gamestore/internal/adapter/api/handler"
	apimiddleware "gamestore/internal/adapter/api/middleware"
	"gamestore/internal/adapter/api/router"
	"gamestore/internal/adapter/repository"
	"gamestore/internal/infrastructure/auth"
	"gamestore/internal/infrastructure/database"
	"gamestore/internal/usecase"
	"gamestore/pkg/config"
	"gamestore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	ctx := context.Background()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to migrate database")
	}

	gameRepo := repository.NewGormGameRepository(db)
	genreRepo := repository.NewGormGenreRepository(db)
	platformRepo := repository.NewGormPlatformRepository(db)
	licenseRepo := repository.NewGormLicenseRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	roleRepo := repository.NewGormRoleRepository(db)
	permissionRepo := repository.NewGormPermissionRepository(db)

	if cfg.SeedOnStartup {
		seedUseCase := usecase.NewSeedUseCase(permissionRepo, roleRepo, userRepo)
		err := seedUseCase.Run(ctx, usecase.SeedInput{
			AdminEmail:    cfg.AdminEmail,
			AdminUsername: cfg.AdminUsername,
		})
		if err != nil {
			logger.Logger().Fatal().Err(err).Msg("Failed to seed roles")
		}
	}

	tokenClient := auth.NewJWTAuthClient(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	permissionUseCase := usecase.NewPermissionUseCase(userRepo, permissionRepo)
	handler.Setup(handler.UseCases{
		Game:       usecase.NewGameUseCase(gameRepo, genreRepo, platformRepo),
		Genre:      usecase.NewGenreUseCase(genreRepo),
		Platform:   usecase.NewPlatformUseCase(platformRepo),
		License:    usecase.NewLicenseUseCase(licenseRepo, gameRepo),
		Role:       usecase.NewRoleUseCase(roleRepo, permissionRepo),
		User:       usecase.NewUserUseCase(userRepo, roleRepo),
		Permission: permissionUseCase,
	}, db, tokenClient, userRepo)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Logger().Info()
			if v.Error != nil {
				event = logger.Logger().Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenClient)
	permissionMiddleware := apimiddleware.NewPermissionMiddleware(permissionUseCase)

	router.Setup(e, authMiddleware, permissionMiddleware)
	router.SetupDevRouter(e, cfg.DevTokensEnabled())

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Logger().Fatal().Err(err).Msg("Server stopped")
	}
}
