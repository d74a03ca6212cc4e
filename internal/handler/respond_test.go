package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"linkfolio/internal/domain"
	"linkfolio/pkg/logger"
)

func runHandleError(t *testing.T, err error) (int, domain.ErrorResponse) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	handleError(c, logger.NewLogger(), err)

	var body domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleError_NotFoundSentinels(t *testing.T) {
	for _, err := range []error{
		domain.ErrLinkNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrProfileNotFound,
	} {
		status, body := runHandleError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", body.Error)
	}
}

func TestHandleError_ValidationError(t *testing.T) {
	status, body := runHandleError(t, domain.NewValidationError("title cannot be empty"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "client_error", body.Error)
	assert.Equal(t, "title cannot be empty", body.Message)
}

func TestHandleError_WrappedInvalidInput(t *testing.T) {
	status, body := runHandleError(t, fmt.Errorf("context: %w", domain.ErrInvalidInput))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_input", body.Error)
}

func TestHandleError_InternalErrorHidesDetail(t *testing.T) {
	status, body := runHandleError(t, domain.NewInternalError(errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body.Error)
	assert.NotContains(t, body.Message, "pq:")
}

func TestHandleError_InvalidCredentials(t *testing.T) {
	status, body := runHandleError(t, domain.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", body.Error)
}

func TestHandleError_EmailTaken(t *testing.T) {
	status, body := runHandleError(t, domain.ErrEmailTaken)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email_taken", body.Error)
}

func TestHandleError_PartialAnalytics(t *testing.T) {
	status, body := runHandleError(t, fmt.Errorf("%w: daily histogram: timeout", domain.ErrPartialAnalytics))

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "analytics_unavailable", body.Error)
}

func TestHandleError_UnknownError(t *testing.T) {
	status, body := runHandleError(t, errors.New("something odd"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body.Error)
}
