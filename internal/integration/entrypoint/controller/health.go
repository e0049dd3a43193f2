package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
	storeName          string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// storeName names the backend checked by storeHealthChecker.
func NewHealthController(storeName string, storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
		storeName:          storeName,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	status := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		status = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Store:     h.storeName,
		Database:  status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
