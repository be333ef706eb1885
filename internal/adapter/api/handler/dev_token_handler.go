package handler

import (
	"github.com/labstack/echo/v4"

	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"
	"gamestore/pkg/errors"
	"gamestore/pkg/response"
)

type DevTokenHandler struct {
	tokenIssuer usecase.TokenIssuer
	userRepo    repository.UserRepository
}

func NewDevTokenHandler(tokenIssuer usecase.TokenIssuer, userRepo repository.UserRepository) *DevTokenHandler {
	return &DevTokenHandler{
		tokenIssuer: tokenIssuer,
		userRepo:    userRepo,
	}
}

type devTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GenerateToken mints a token for an existing user. Only routed in
// development.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userRepo.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}
	if user == nil {
		return response.Error(c, errors.NotFound("User", nil))
	}

	token, err := h.tokenIssuer.GenerateToken(user.ID)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate token", err))
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
