package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/infrastructure/database"
)

func TestHealthCheck(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	h := NewHealthHandler(db)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Server is running")
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/health/db", nil), rec)
	if assert.NoError(t, h.CheckDatabaseHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
