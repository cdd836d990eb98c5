package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/response"
)

// SystemHandler exposes liveness, database connectivity and Prometheus endpoints.
type SystemHandler struct {
	health  *service.HealthService
	metrics *service.MetricsService
}

// NewSystemHandler constructs a system handler. metrics may be nil when disabled.
func NewSystemHandler(health *service.HealthService, metrics *service.MetricsService) *SystemHandler {
	return &SystemHandler{health: health, metrics: metrics}
}

// Health godoc
// @Summary Liveness check
// @Description Responds without touching the database
// @Tags Sistema
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DatabaseCheck godoc
// @Summary Database connectivity check
// @Description Runs a round-trip query against PostgreSQL
// @Tags Sistema
// @Produce json
// @Success 200 {object} response.MessageBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/test [get]
func (h *SystemHandler) DatabaseCheck(c *gin.Context) {
	if _, err := h.health.Ping(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Database connection successful")
}

// Prometheus godoc
// @Summary Prometheus metrics
// @Tags Sistema
// @Produce plain
// @Success 200 {string} string
// @Failure 503 {string} string
// @Router /metrics [get]
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
