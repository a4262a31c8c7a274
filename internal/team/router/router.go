// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	quoteRepository "github.com/flexquotes/backend/internal/quote/repository"
	"github.com/flexquotes/backend/internal/team/handler"
	"github.com/flexquotes/backend/internal/team/repository"
	"github.com/flexquotes/backend/internal/team/service"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	quotes := quoteRepository.New(db, logger)
	svc := service.New(repo, quotes, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/create", h.Create)
	r.POST("/team/join", h.Join)
	r.POST("/team/leave", h.Leave)
	r.POST("/team/delete", h.Delete)
	r.POST("/team/changeInfo", h.ChangeInfo)
}
