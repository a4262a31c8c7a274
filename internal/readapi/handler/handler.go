// Package handler provides the read-only facade endpoints. Unlike the
// session-protected module routes, these look records up by an `id`
// request header and always answer with a JSON array on success.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	quoteRepository "github.com/flexquotes/backend/internal/quote/repository"
	teamModel "github.com/flexquotes/backend/internal/team/model"
	teamRepository "github.com/flexquotes/backend/internal/team/repository"
	userRepository "github.com/flexquotes/backend/internal/user/repository"
)

// Handler handles HTTP requests for the read facade.
type Handler struct {
	teams  teamRepository.Repository
	users  userRepository.Repository
	quotes quoteRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new read facade handler instance.
func New(
	teams teamRepository.Repository,
	users userRepository.Repository,
	quotes quoteRepository.Repository,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{teams: teams, users: users, quotes: quotes, logger: logger}
}

// lookupID extracts the `id` header. A missing header is a client error.
func lookupID(c *gin.Context) (string, bool) {
	id := c.GetHeader("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id header is required"})
		return "", false
	}
	return id, true
}

// GetTeam handles GET /api/team. The id header carries a user id; the
// response lists the teams whose member set contains it (at most one).
// Passcode is included only when the requesting user is the creator.
func (h *Handler) GetTeam(c *gin.Context) {
	userID, ok := lookupID(c)
	if !ok {
		return
	}

	teams, err := h.teams.FindByMember(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("error fetching team by member", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error while getting team"})
		return
	}

	resp := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		team := &teams[i]

		members, err := h.teams.MemberIDs(c.Request.Context(), team.TeamUID)
		if err != nil {
			h.logger.Errorw("error fetching team members", "team_uid", team.TeamUID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while getting team"})
			return
		}

		item := teamModel.TeamResponse{
			TeamUID:   team.TeamUID,
			TeamID:    team.TeamID,
			Name:      team.Name,
			CreatorID: team.CreatorID,
			Members:   members,
		}
		if team.CreatorID == userID {
			item.Passcode = team.Passcode
		}
		resp = append(resp, item)
	}

	c.JSON(http.StatusOK, resp)
}

// GetMembers handles GET /api/members. The id header carries a team uid.
func (h *Handler) GetMembers(c *gin.Context) {
	teamUID, ok := lookupID(c)
	if !ok {
		return
	}

	users, err := h.users.ListByTeam(c.Request.Context(), teamUID)
	if err != nil {
		h.logger.Errorw("error fetching team members", "team_uid", teamUID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error while getting members"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetQuotes handles GET /api/quotes. The id header carries a team uid.
func (h *Handler) GetQuotes(c *gin.Context) {
	teamUID, ok := lookupID(c)
	if !ok {
		return
	}

	quotes, err := h.quotes.ListByTeam(c.Request.Context(), teamUID)
	if err != nil {
		h.logger.Errorw("error fetching team quotes", "team_uid", teamUID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error while getting quotes"})
		return
	}

	c.JSON(http.StatusOK, quotes)
}
