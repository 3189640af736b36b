package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autoscribe/internal/api/v1/dto"
	"autoscribe/internal/app/api/provider"
)

// SystemHandler serves health and capability probes
type SystemHandler struct {
	started time.Time
}

// NewSystemHandler creates a system handler; uptime counts from now
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{started: time.Now()}
}

// Health handles GET /api/health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Seconds(),
	})
}

// Capabilities handles GET /api/capabilities
//
// @Summary List providers
// @Description Lists the transcription services and the upload size each one is routed for.
// @Tags system
// @Produce json
// @Success 200 {object} dto.CapabilitiesResponse
// @Router /capabilities [get]
func (h *SystemHandler) Capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CapabilitiesResponse{Services: provider.Capabilities()})
}
