// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexquotes/backend/internal/middleware"
	teamModel "github.com/flexquotes/backend/internal/team/model"
	"github.com/flexquotes/backend/internal/team/service"
	userModel "github.com/flexquotes/backend/internal/user/model"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /team/create request.
func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), identity.ID, &req)
	if err != nil {
		h.writeError(c, err, "error creating team")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// Join handles POST /team/join request.
func (h *Handler) Join(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req teamModel.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Join(c.Request.Context(), identity.ID, &req)
	if err != nil {
		h.writeError(c, err, "error joining team")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// Leave handles POST /team/leave request.
func (h *Handler) Leave(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req teamModel.LeaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Leave(c.Request.Context(), identity.ID, req.TeamUID); err != nil {
		h.writeError(c, err, "error leaving team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete handles POST /team/delete request.
func (h *Handler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req teamModel.DeleteTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.ID, req.TeamUID); err != nil {
		h.writeError(c, err, "error deleting team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ChangeInfo handles POST /team/changeInfo request.
func (h *Handler) ChangeInfo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "session required", http.StatusUnauthorized)
		return
	}

	var req teamModel.ChangeTeamInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ChangeInfo(c.Request.Context(), identity.ID, &req)
	if err != nil {
		h.writeError(c, err, "error changing team info")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// writeError maps service errors onto the response contract.
func (h *Handler) writeError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, userModel.ErrUserNotFound):
		notFoundResponse(c, "user not found")
	case errors.Is(err, teamModel.ErrAlreadyInTeam):
		errorResponse(c, "ALREADY_IN_TEAM", "user already belongs to a team", http.StatusConflict)
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "NOT_MEMBER", "user is not a member of the team", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotCreator):
		errorResponse(c, "NOT_CREATOR", "operation allowed only for the team creator", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		errorResponse(c, "INVALID_REQUEST", "team name must be 3-15 alphanumeric characters", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_REQUEST", "team id must be # followed by 6 characters", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidPasscode):
		errorResponse(c, "INVALID_REQUEST", "passcode must be 3-15 lowercase alphanumeric characters", http.StatusBadRequest)
	default:
		h.logger.Errorw(logMessage, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
