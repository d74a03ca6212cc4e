package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkfolio/internal/domain"
	"linkfolio/internal/service"
	"linkfolio/pkg/logger"
)

// LinkHandler handles the authenticated management surface for links,
// categories, and per-link analytics
type LinkHandler struct {
	links     service.LinkService
	analytics service.AnalyticsService
	logger    *logger.Logger
}

// NewLinkHandler creates a new link handler with dependencies
func NewLinkHandler(links service.LinkService, analytics service.AnalyticsService, logger *logger.Logger) *LinkHandler {
	return &LinkHandler{
		links:     links,
		analytics: analytics,
		logger:    logger,
	}
}

// ListCategories handles GET /api/v1/categories
func (h *LinkHandler) ListCategories(c *gin.Context) {
	categories, err := h.links.ListCategories(c.Request.Context(), OwnerID(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/categories
func (h *LinkHandler) CreateCategory(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.links.CreateCategory(c.Request.Context(), OwnerID(c), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PATCH /api/v1/categories/:id
func (h *LinkHandler) UpdateCategory(c *gin.Context) {
	var req domain.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.links.UpdateCategory(c.Request.Context(), OwnerID(c), c.Param("id"), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *LinkHandler) DeleteCategory(c *gin.Context) {
	if err := h.links.DeleteCategory(c.Request.Context(), OwnerID(c), c.Param("id")); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ReorderCategories handles PUT /api/v1/categories/reorder
func (h *LinkHandler) ReorderCategories(c *gin.Context) {
	var req domain.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.links.ReorderCategories(c.Request.Context(), OwnerID(c), req.OrderedIDs); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categories reordered"})
}

// ListLinks handles GET /api/v1/links
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.links.ListLinks(c.Request.Context(), OwnerID(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// CreateLink handles POST /api/v1/links
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req domain.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	link, err := h.links.CreateLink(c.Request.Context(), OwnerID(c), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateLink handles PATCH /api/v1/links/:id
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	var req domain.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	link, err := h.links.UpdateLink(c.Request.Context(), OwnerID(c), c.Param("id"), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteLink handles DELETE /api/v1/links/:id
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.links.DeleteLink(c.Request.Context(), OwnerID(c), c.Param("id")); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}

// ReorderLinks handles PUT /api/v1/links/reorder
func (h *LinkHandler) ReorderLinks(c *gin.Context) {
	var req domain.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.links.ReorderLinks(c.Request.Context(), OwnerID(c), req.OrderedIDs); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Links reordered"})
}

// GetAnalytics handles GET /api/v1/links/:id/analytics
func (h *LinkHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.analytics.GetAnalytics(c.Request.Context(), OwnerID(c), c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
