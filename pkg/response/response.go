package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "gamestore/pkg/errors"
	"gamestore/pkg/logger"
	"gamestore/pkg/utils"
)

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Paginated[T any](c echo.Context, page *utils.PaginatedResult[T]) error {
	return Success(c, page)
}

func Error(c echo.Context, err error) error {
	// Handle validation errors
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	// Handle application errors
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Path(), appErr)
		}
		return fail(c, appErr.Status, appErr.Code, appErr.Message, nil)
	}

	// Bind failures and middleware rejections
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fail(c, httpErr.Code, codeForStatus(httpErr.Code), fmt.Sprint(httpErr.Message), nil)
	}

	logger.Error("%s %s: unhandled error: %v", c.Request().Method, c.Path(), err)
	return fail(c, http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred", nil)
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	details := make(map[string]string, len(validationErr))
	var first string
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min", "gte":
			message = field + " must be at least " + param
		case "max", "lte":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}
		if first == "" {
			first = message
		}
		details[field] = message
	}
	if first == "" {
		first = "Invalid input data"
	}

	return fail(c, http.StatusBadRequest, apperrors.CodeValidation, first, details)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, Response{
		Success:   false,
		Timestamp: now(),
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return apperrors.CodeBadRequest
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthenticated
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusConflict:
		return apperrors.CodeConflict
	}
	if status >= http.StatusInternalServerError {
		return apperrors.CodeInternal
	}
	return apperrors.CodeBadRequest
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
