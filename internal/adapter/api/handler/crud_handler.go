package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/response"
	"gamestore/pkg/utils"
)

type crudService[C, U, D any] interface {
	GetByID(ctx context.Context, id uuid.UUID, include ...string) (*D, error)
	GetPage(ctx context.Context, criteria repository.QueryCriteria, paging utils.PagingParams) (*utils.PaginatedResult[D], error)
	Add(ctx context.Context, input *C) (*D, error)
	Update(ctx context.Context, input *U) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// crudHandler serves list/get/create/update/delete for one resource.
type crudHandler[C, U, D any] struct {
	resource string
	service  crudService[C, U, D]
	filters  []queryFilter
	setID    func(*U, uuid.UUID)
}

func (h *crudHandler[C, U, D]) List(c echo.Context) error {
	criteria, err := parseCriteria(c, h.filters)
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.service.GetPage(c.Request().Context(), criteria, utils.GetPagingParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, page)
}

func (h *crudHandler[C, U, D]) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	dto, err := h.service.GetByID(c.Request().Context(), id, includes(c)...)
	if err != nil {
		return response.Error(c, err)
	}
	if dto == nil {
		return response.Error(c, errors.NotFound(h.resource, nil))
	}
	return response.Success(c, dto)
}

func (h *crudHandler[C, U, D]) Create(c echo.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	dto, err := h.service.Add(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, dto)
}

func (h *crudHandler[C, U, D]) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req U
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	h.setID(&req, id)

	ok, err := h.service.Update(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	if !ok {
		return response.Error(c, errors.NotFound(h.resource, nil))
	}

	dto, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, dto)
}

func (h *crudHandler[C, U, D]) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	ok, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if !ok {
		return response.Error(c, errors.NotFound(h.resource, nil))
	}
	return response.Success(c, map[string]string{
		"message": fmt.Sprintf("%s deleted successfully", h.resource),
	})
}
