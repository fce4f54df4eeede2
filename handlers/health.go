package handlers

import (
	"net/http"

	"servicedirectory/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot; 503 until every
// dependency has answered.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "healthy": status.Healthy()})
	}
}
