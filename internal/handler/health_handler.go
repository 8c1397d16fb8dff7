package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Hello godoc
// @Summary      Liveness greeting
// @Tags         Health
// @Produce      json
// @Success      200 {object} handler.MessageResponse
// @Router       /api/hello [get]
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello, World!"})
}

// Healthz godoc
// @Summary      Readiness check
// @Tags         Health
// @Produce      json
// @Success      200 {object} object{status=string}
// @Failure      503 {object} object{status=string}
// @Router       /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger(c).Error().Err(err).Msg("Healthz(): database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
