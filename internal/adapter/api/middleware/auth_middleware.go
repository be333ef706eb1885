package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gamestore/internal/usecase"
)

// ContextUserID is the echo context key holding the authenticated user id.
const ContextUserID = "uid"

type AuthMiddleware struct {
	verifier usecase.TokenVerifier
}

func NewAuthMiddleware(verifier usecase.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		// Check if the Authorization header has the right format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, err := m.verifier.VerifyToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(ContextUserID, userID)
		return next(c)
	}
}

// UserID returns the authenticated user id, or uuid.Nil when the request
// did not pass through Authenticate.
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(ContextUserID).(uuid.UUID)
	return id
}
