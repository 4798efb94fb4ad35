package handler

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity plus the SMTP circuit breaker
// state. DB or Redis failure makes the check 503; an open mail breaker only
// degrades the report, the store keeps serving.
func Health(db *gorm.DB, rdb *redis.Client, breaker *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		if db == nil {
			dbStatus = "error"
		} else if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		smtpStatus := "disabled"
		if breaker != nil {
			smtpStatus = breaker.State()
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":           status == http.StatusOK,
			"db":           dbStatus,
			"redis":        redisStatus,
			"smtp_breaker": smtpStatus,
		})
	}
}
