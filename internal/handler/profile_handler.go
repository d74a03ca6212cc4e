package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkfolio/internal/domain"
	"linkfolio/internal/service"
	"linkfolio/pkg/logger"
)

// ProfileHandler handles account auth and the authenticated profile surface
type ProfileHandler struct {
	profiles service.ProfileService
	logger   *logger.Logger
}

// NewProfileHandler creates a new profile handler with dependencies
func NewProfileHandler(profiles service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *ProfileHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.profiles.Register(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
func (h *ProfileHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.profiles.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.profiles.GetProfile(c.Request.Context(), OwnerID(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), OwnerID(c), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListMessages handles GET /api/v1/messages
func (h *ProfileHandler) ListMessages(c *gin.Context) {
	messages, err := h.profiles.ListContactMessages(c.Request.Context(), OwnerID(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
