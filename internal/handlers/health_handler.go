package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/models"
)

type HealthHandler struct {
	db        *gorm.DB
	startedAt time.Time
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, startedAt: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	var count int64
	if err := h.db.Model(&models.Client{}).Count(&count).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"message":   "Database connection failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "OK",
		"database":     "Connected",
		"clientsCount": count,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"uptime":       time.Since(h.startedAt).Seconds(),
	})
}
