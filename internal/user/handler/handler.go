// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexquotes/backend/internal/middleware"
	"github.com/flexquotes/backend/internal/user/model"
	"github.com/flexquotes/backend/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Sync handles POST /user/sync request. The body is optional; absent
// fields fall back to the session claims.
func (h *Handler) Sync(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req model.SyncProfileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
			return
		}
	}

	user, err := h.service.Sync(c.Request.Context(), identity, &req)
	if err != nil {
		h.logger.Errorw("error syncing profile", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// Me handles GET /user/me request.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	user, err := h.service.Me(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			notFoundResponse(c, "user not found")
			return
		}
		h.logger.Errorw("error fetching profile", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
