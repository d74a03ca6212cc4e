package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"linkfolio/internal/domain"
	"linkfolio/internal/service"
	"linkfolio/pkg/logger"
)

// PublicHandler serves the unauthenticated surface: public profiles, click
// tracking, contact form, and profile QR codes
type PublicHandler struct {
	profiles  service.ProfileService
	analytics service.AnalyticsService
	baseURL   string
	logger    *logger.Logger
}

// NewPublicHandler creates a new public handler with dependencies
func NewPublicHandler(profiles service.ProfileService, analytics service.AnalyticsService, baseURL string, logger *logger.Logger) *PublicHandler {
	return &PublicHandler{
		profiles:  profiles,
		analytics: analytics,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// GetProfile handles GET /p/:slug
// Returns the assembled public page: profile, testimonials, bucketed links.
func (h *PublicHandler) GetProfile(c *gin.Context) {
	page, err := h.profiles.GetPublicProfile(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// clickRequest is the optional body of a click beacon
type clickRequest struct {
	Referrer string `json:"referrer,omitempty"`
}

// TrackClick handles POST /p/click/:linkId
// The response returns immediately; the ledger write happens off the request
// path so tracking can never delay the visitor's navigation. The endpoint
// always answers 202 for a well-formed request, even if recording later fails.
func (h *PublicHandler) TrackClick(c *gin.Context) {
	linkID := c.Param("linkId")
	if linkID == "" {
		badRequest(c, "Link id is required")
		return
	}

	var req clickRequest
	// Body is optional; the referrer header is the fallback
	_ = c.ShouldBindJSON(&req)
	if req.Referrer == "" {
		req.Referrer = c.Request.Referer()
	}

	h.analytics.RecordClickAsync(&domain.ClickEvent{
		LinkID:    linkID,
		Referrer:  req.Referrer,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
		Country:   c.GetHeader("CF-IPCountry"),
	})

	c.JSON(http.StatusAccepted, gin.H{"message": "Click recorded"})
}

// SubmitContact handles POST /p/:slug/contact
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.profiles.SubmitContact(c.Request.Context(), c.Param("slug"), &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
}

// GetQRCode handles GET /p/:slug/qrcode
// Returns a PNG QR code pointing at the public profile page.
func (h *PublicHandler) GetQRCode(c *gin.Context) {
	profileSlug := c.Param("slug")

	// Resolve first so unknown slugs 404 instead of encoding a dead URL
	if _, err := h.profiles.ResolveSlug(c.Request.Context(), profileSlug); err != nil {
		handleError(c, h.logger, err)
		return
	}

	png, err := qrcode.Encode(h.baseURL+"/p/"+profileSlug, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("Failed to generate QR code", "error", err, "slug", profileSlug)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "qrcode_failed",
			Message: "Failed to generate QR code",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", png)
}
