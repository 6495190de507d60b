package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseconnect/backend/internal/app/models/dto"
)

// HealthController handles liveness checks
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check reports that the service is reachable
// @Summary Health check
// @Description Liveness-only check with no dependency verification
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is reachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
