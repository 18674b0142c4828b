package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/pkg/redis"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewHealthHandler(db *gorm.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// Check reports the status of the service and its backing stores.
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{}

	checks["database"] = "up"
	if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	}

	checks["redis"] = "up"
	if h.cache == nil {
		checks["redis"] = "disabled"
	} else if err := h.cache.Ping(c.Request.Context()); err != nil {
		checks["redis"] = "down"
	}

	c.JSON(status, gin.H{
		"service":   constants.AppName,
		"status":    http.StatusText(status),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
