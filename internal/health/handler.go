// Package health provides the health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/database/database"
)

// Handler handles health check requests.
type Handler struct {
	db      *gorm.DB
	logger  *zap.SugaredLogger
	started time.Time
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:      db,
		logger:  logger,
		started: time.Now(),
	}
}

// PoolStats reports database connection pool usage.
type PoolStats struct {
	Open  int `json:"open"`
	InUse int `json:"inUse"`
	Idle  int `json:"idle"`
}

// Response represents the health check response body.
type Response struct {
	Status string     `json:"status"`
	Uptime string     `json:"uptime"`
	Pool   *PoolStats `json:"pool,omitempty"`
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	uptime := time.Since(h.started).Round(time.Second).String()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unhealthy",
			Uptime: uptime,
		})
		return
	}

	resp := Response{
		Status: "ok",
		Uptime: uptime,
	}

	if stats, err := database.GetStats(h.db); err == nil {
		resp.Pool = &PoolStats{
			Open:  stats.OpenConnections,
			InUse: stats.InUse,
			Idle:  stats.Idle,
		}
	}

	c.JSON(http.StatusOK, resp)
}
