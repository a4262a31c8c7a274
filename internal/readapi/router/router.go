// Package router provides read facade routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	quoteRepository "github.com/flexquotes/backend/internal/quote/repository"
	"github.com/flexquotes/backend/internal/readapi/handler"
	teamRepository "github.com/flexquotes/backend/internal/team/repository"
	userRepository "github.com/flexquotes/backend/internal/user/repository"
)

// RegisterRoutes registers the read facade routes. These stay outside
// the authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	teams := teamRepository.New(db, logger)
	users := userRepository.New(db, logger)
	quotes := quoteRepository.New(db, logger)
	h := handler.New(teams, users, quotes, logger)

	r.GET("/api/team", h.GetTeam)
	r.GET("/api/members", h.GetMembers)
	r.GET("/api/quotes", h.GetQuotes)
}
