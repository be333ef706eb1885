package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/response"
	"gamestore/pkg/utils"
)

type GenreHandler struct {
	*crudHandler[usecase.CreateGenreInput, usecase.UpdateGenreInput, usecase.GenreDTO]
	genreUseCase *usecase.GenreUseCase
}

func NewGenreHandler(genreUseCase *usecase.GenreUseCase) *GenreHandler {
	return &GenreHandler{
		crudHandler: &crudHandler[usecase.CreateGenreInput, usecase.UpdateGenreInput, usecase.GenreDTO]{
			resource: "Genre",
			service:  genreUseCase,
			filters: []queryFilter{
				{param: "search", field: "name", op: repository.OpLike},
				{param: "parent_id", field: "parent_id", op: repository.OpEq, uuid: true},
			},
			setID: func(in *usecase.UpdateGenreInput, id uuid.UUID) { in.ID = id },
		},
		genreUseCase: genreUseCase,
	}
}

func (h *GenreHandler) ListSubGenres(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.genreUseCase.ListSubGenres(c.Request().Context(), id, utils.GetPagingParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, page)
}
