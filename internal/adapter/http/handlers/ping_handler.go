package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency answers.
type HealthChecker func(ctx context.Context) error

type PingHandler struct {
	check HealthChecker
}

func NewPingHandler(check HealthChecker) *PingHandler {
	return &PingHandler{check: check}
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ping [get]
func (h *PingHandler) Ping(c *gin.Context) {
	if h.check != nil {
		if err := h.check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "pong", "database": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong", "database": "ok"})
}
