package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkfolio/internal/domain"
	"linkfolio/pkg/logger"
)

// handleError maps domain errors onto HTTP responses. Internal errors are
// logged with context; users only ever see a generic message for those.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	var appErr *domain.AppError

	switch {
	case errors.As(err, &appErr):
		if appErr.Internal {
			log.Error("Internal server error", "error", appErr.Err, "path", c.Request.URL.Path)
			c.JSON(appErr.StatusCode, domain.ErrorResponse{
				Error:   "internal_error",
				Message: "An internal error occurred",
				Code:    appErr.StatusCode,
			})
		} else {
			c.JSON(appErr.StatusCode, domain.ErrorResponse{
				Error:   "client_error",
				Message: appErr.Message,
				Code:    appErr.StatusCode,
			})
		}

	case errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})

	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, domain.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, domain.ErrorResponse{
			Error:   "email_taken",
			Message: "An account with this email already exists",
			Code:    http.StatusConflict,
		})

	case errors.Is(err, domain.ErrPartialAnalytics):
		log.Error("Analytics aggregation failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusServiceUnavailable, domain.ErrorResponse{
			Error:   "analytics_unavailable",
			Message: "Analytics are temporarily unavailable",
			Code:    http.StatusServiceUnavailable,
		})

	default:
		log.Error("Unexpected error", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred",
			Code:    http.StatusInternalServerError,
		})
	}
}

// badRequest is the uniform response for malformed request bodies
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, domain.ErrorResponse{
		Error:   "invalid_request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}
