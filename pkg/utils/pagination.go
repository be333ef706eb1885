package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PagingParams is a normalized page request. Use NewPagingParams or
// Normalize; the zero value means "first page, default size".
type PagingParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPagingParams clamps page to >= 1 and pageSize to [1, MaxPageSize].
// A pageSize of 0 selects DefaultPageSize. Pages whose offset would not fit
// in an int are clamped to the last representable page.
func NewPagingParams(page, pageSize int) PagingParams {
	return PagingParams{Page: page, PageSize: pageSize}.Normalize()
}

func (p PagingParams) Normalize() PagingParams {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize == 0:
		p.PageSize = DefaultPageSize
	case p.PageSize < 1:
		p.PageSize = 1
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	// Offset must stay representable.
	if maxPage := math.MaxInt/p.PageSize + 1; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

func (p PagingParams) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// GetPagingParams extracts paging parameters from the request query.
// "limit" is accepted as an alias of "page_size".
func GetPagingParams(c echo.Context) PagingParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	raw := c.QueryParam("page_size")
	if raw == "" {
		raw = c.QueryParam("limit")
	}
	pageSize, _ := strconv.Atoi(raw)

	return NewPagingParams(page, pageSize)
}
