package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewPagingParamsClampsPageSize(t *testing.T) {
	for _, size := range []int{101, 150, 1000} {
		assert.Equal(t, MaxPageSize, NewPagingParams(1, size).PageSize, "size %d", size)
	}
	for _, size := range []int{1, 10, 57, 100} {
		assert.Equal(t, size, NewPagingParams(1, size).PageSize, "size %d", size)
	}

	assert.Equal(t, DefaultPageSize, NewPagingParams(1, 0).PageSize)
	assert.Equal(t, 1, NewPagingParams(1, -5).PageSize)
}

func TestNewPagingParamsClampsPage(t *testing.T) {
	assert.Equal(t, 1, NewPagingParams(0, 10).Page)
	assert.Equal(t, 1, NewPagingParams(-3, 10).Page)
	assert.Equal(t, 4, NewPagingParams(4, 10).Page)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, NewPagingParams(1, 10).Offset())
	assert.Equal(t, 40, NewPagingParams(3, 20).Offset())
	assert.Equal(t, 0, PagingParams{}.Offset())
}

func TestOffsetNeverOverflows(t *testing.T) {
	for _, size := range []int{1, 7, DefaultPageSize, MaxPageSize} {
		p := NewPagingParams(math.MaxInt, size)
		assert.Greater(t, p.Page, 1, "size %d", size)
		assert.GreaterOrEqual(t, p.Offset(), 0, "size %d", size)
		assert.Equal(t, (p.Page-1)*p.PageSize, p.Offset())
	}
}

func TestGetPagingParams(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/games?page=2&page_size=500", nil)
	p := GetPagingParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, PagingParams{Page: 2, PageSize: MaxPageSize}, p)

	req = httptest.NewRequest(http.MethodGet, "/v1/games?limit=25", nil)
	p = GetPagingParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, PagingParams{Page: 1, PageSize: 25}, p)

	req = httptest.NewRequest(http.MethodGet, "/v1/games?page=9223372036854775807&page_size=100", nil)
	p = GetPagingParams(e.NewContext(req, httptest.NewRecorder()))
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.Equal(t, MaxPageSize, p.PageSize)

	req = httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	p = GetPagingParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, PagingParams{Page: 1, PageSize: DefaultPageSize}, p)
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 7, 15},
	}
	for _, tc := range cases {
		t.Run(strconv.FormatInt(tc.total, 10), func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.total, tc.pageSize))
		})
	}
}

func TestMapPaginatedResultKeepsMetadata(t *testing.T) {
	in := NewPaginatedResult([]int{1, 2, 3}, NewPagingParams(2, 3), 8)

	out := MapPaginatedResult(in, func(i int) string { return strconv.Itoa(i * 10) })

	assert.Equal(t, []string{"10", "20", "30"}, out.Items)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.PageSize)
	assert.Equal(t, int64(8), out.TotalItems)
	assert.Equal(t, 3, out.TotalPages)
}

func TestNewPaginatedResultNeverReturnsNilItems(t *testing.T) {
	res := NewPaginatedResult[string](nil, PagingParams{}, 0)

	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
}
