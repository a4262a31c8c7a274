// Package handler provides HTTP handlers for quote endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexquotes/backend/internal/middleware"
	"github.com/flexquotes/backend/internal/quote/model"
	"github.com/flexquotes/backend/internal/quote/service"
	teamModel "github.com/flexquotes/backend/internal/team/model"
	userModel "github.com/flexquotes/backend/internal/user/model"
)

// Handler handles HTTP requests for quote endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new quote handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Add handles POST /quote/add request.
func (h *Handler) Add(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req model.AddQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Add(c.Request.Context(), identity.ID, &req)
	if err != nil {
		h.writeError(c, err, "error adding quote")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"quote": quote,
	})
}

// Delete handles POST /quote/delete request.
func (h *Handler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req model.DeleteQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.ID, req.QuoteID); err != nil {
		h.writeError(c, err, "error deleting quote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Rate handles POST /quote/rate request.
func (h *Handler) Rate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req model.RateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Rate(c.Request.Context(), identity.ID, req.QuoteID)
	if err != nil {
		h.writeError(c, err, "error rating quote")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps service errors onto the response contract.
func (h *Handler) writeError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, model.ErrQuoteNotFound):
		notFoundResponse(c, "quote not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, userModel.ErrUserNotFound):
		notFoundResponse(c, "user not found")
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "NOT_MEMBER", "user is not a member of a team", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotCreator):
		errorResponse(c, "NOT_CREATOR", "operation allowed only for the team creator", http.StatusForbidden)
	case errors.Is(err, model.ErrAuthorNotMember):
		errorResponse(c, "INVALID_REQUEST", "quote author must belong to the same team", http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidQuoteText):
		errorResponse(c, "INVALID_REQUEST", "quote text must be 3-500 allowed characters", http.StatusBadRequest)
	default:
		h.logger.Errorw(logMessage, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
