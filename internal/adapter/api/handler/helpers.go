package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
)

// queryFilter maps a query parameter onto a condition of the listed entity.
type queryFilter struct {
	param string
	field string
	op    repository.Operator
	uuid  bool
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.BadRequest("Invalid "+name, err)
	}
	return id, nil
}

// parseCriteria reads sort and include plus the handler's own filters from
// the query string. Values of uuid filters must parse as uuids.
func parseCriteria(c echo.Context, filters []queryFilter) (repository.QueryCriteria, error) {
	criteria := repository.QueryCriteria{
		Sort:    repository.ParseSort(c.QueryParam("sort")),
		Include: repository.ParseInclude(c.QueryParam("include")),
	}

	for _, f := range filters {
		raw := strings.TrimSpace(c.QueryParam(f.param))
		if raw == "" {
			continue
		}
		var value interface{} = raw
		if f.uuid {
			id, err := uuid.Parse(raw)
			if err != nil {
				return criteria, errors.BadRequest("Invalid "+f.param, err)
			}
			value = id
		}
		criteria = criteria.Where(f.field, f.op, value)
	}
	return criteria, nil
}

func includes(c echo.Context) []string {
	return repository.ParseInclude(c.QueryParam("include"))
}
