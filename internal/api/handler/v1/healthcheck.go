package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
	}
}

// HandleHealthcheck godoc
// @Summary      Liveness check including the relational store
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Seconds(),
	})
}
