package handlers

import (
	"net/http"
	"time"

	"justnest/config"
	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the last dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "OK",
		"timestamp":    time.Now().UTC(),
		"uptime":       utils.Uptime().Seconds(),
		"environment":  config.GetEnv(),
		"dependencies": utils.GetHealthStatus(),
	})
}
