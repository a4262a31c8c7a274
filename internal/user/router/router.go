// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/user/handler"
	"github.com/flexquotes/backend/internal/user/repository"
	"github.com/flexquotes/backend/internal/user/service"
)

// RegisterRoutes registers user module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/user/sync", h.Sync)
	r.GET("/user/me", h.Me)
}
