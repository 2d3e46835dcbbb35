package handlers

import (
	"net/http"

	"github.com/NomadCrew/feedback-service/types"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService HealthServiceInterface
}

func NewHealthHandler(healthService HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// DetailedHealth godoc
// @Summary  Service health
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthCheck
// @Failure  503  {object}  types.HealthCheck
// @Router   /health [get]
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	respond(c, h.healthService.CheckHealth(c.Request.Context()))
}

// LivenessCheck handles kubernetes liveness probe
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthCheck
// @Router   /health/liveness [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	respond(c, h.healthService.CheckLiveness())
}

// ReadinessCheck handles kubernetes readiness probe
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthCheck
// @Failure  503  {object}  types.HealthCheck
// @Router   /health/readiness [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	respond(c, h.healthService.CheckReadiness(c.Request.Context()))
}

// respond answers 503 only when a required dependency is down; DEGRADED
// still serves traffic.
func respond(c *gin.Context, health types.HealthCheck) {
	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
