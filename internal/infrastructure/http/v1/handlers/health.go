// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/holding"
)

// Version is reported by the info endpoint.
const Version = "1.0.0"

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store  *holding.Store
	driver string
}

// NewHealthHandler creates a new health handler. driver names the storage driver.
func NewHealthHandler(store *holding.Store, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe. The service is ready once the document is loaded.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.store.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"document": "loading",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"document": "loaded",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "simorgh",
		"version": Version,
		"storage": map[string]any{
			"driver": h.driver,
			"source": h.store.Source(),
		},
	})
}
