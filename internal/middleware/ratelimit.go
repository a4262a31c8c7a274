package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/flexquotes/backend/internal/config"
	"github.com/flexquotes/backend/pkg/redisstore"
)

// RateLimit returns a middleware that throttles requests per client IP
// using a redis fixed-window counter. A nil client disables throttling.
//
// Redis unavailability fails open: a store outage must not take the
// application down with it.
func RateLimit(client *redis.Client, cfg appConfig.RateLimitConfig, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := redisstore.IncrWindow(c.Request.Context(), client, key, cfg.Window)
		if err != nil {
			logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if count > int64(cfg.MaxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				},
			})
			return
		}

		c.Next()
	}
}
