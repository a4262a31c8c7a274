// Package router provides quote module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/quote/handler"
	"github.com/flexquotes/backend/internal/quote/repository"
	"github.com/flexquotes/backend/internal/quote/service"
	teamRepository "github.com/flexquotes/backend/internal/team/repository"
	userRepository "github.com/flexquotes/backend/internal/user/repository"
)

// RegisterRoutes registers quote module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	teams := teamRepository.New(db, logger)
	users := userRepository.New(db, logger)
	svc := service.New(repo, teams, users, db, logger)
	h := handler.New(svc, logger)

	r.POST("/quote/add", h.Add)
	r.POST("/quote/delete", h.Delete)
	r.POST("/quote/rate", h.Rate)
}
