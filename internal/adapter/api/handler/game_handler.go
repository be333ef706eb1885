package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/errors"
	"gamestore/pkg/response"
	"gamestore/pkg/utils"
)

type GameHandler struct {
	*crudHandler[usecase.CreateGameInput, usecase.UpdateGameInput, usecase.GameDTO]
	gameUseCase *usecase.GameUseCase
}

func NewGameHandler(gameUseCase *usecase.GameUseCase) *GameHandler {
	return &GameHandler{
		crudHandler: &crudHandler[usecase.CreateGameInput, usecase.UpdateGameInput, usecase.GameDTO]{
			resource: "Game",
			service:  gameUseCase,
			filters: []queryFilter{
				{param: "search", field: "name", op: repository.OpLike},
				{param: "min_price", field: "price", op: repository.OpGte},
				{param: "max_price", field: "price", op: repository.OpLte},
			},
			setID: func(in *usecase.UpdateGameInput, id uuid.UUID) { in.ID = id },
		},
		gameUseCase: gameUseCase,
	}
}

func (h *GameHandler) GetByKey(c echo.Context) error {
	game, err := h.gameUseCase.GetByKey(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}
	if game == nil {
		return response.Error(c, errors.NotFound("Game", nil))
	}
	return response.Success(c, game)
}

func (h *GameHandler) ListByGenre(c echo.Context) error {
	genreID, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.gameUseCase.ListByGenre(c.Request().Context(), genreID, utils.GetPagingParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, page)
}

func (h *GameHandler) ListByPlatform(c echo.Context) error {
	platformID, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.gameUseCase.ListByPlatform(c.Request().Context(), platformID, utils.GetPagingParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, page)
}
