package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orion/internal/utils"
	"orion/pkg/logger"
)

// Pinger checks reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to the Pinger interface.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db  Pinger
	log *logger.Logger
}

func NewHealthHandler(db Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log,
	}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, "OK", gin.H{
		"service": utils.AppName,
		"version": utils.AppVersion,
		"time":    time.Now().UTC(),
	})
}

// HealthDB reports document-store reachability.
func (h *HealthHandler) HealthDB(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WithError(err).Error("database health check failed")
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Message: "Database unreachable",
		})
		return
	}
	utils.SuccessResponse(c, "OK", gin.H{"database": "reachable"})
}
