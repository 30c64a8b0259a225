package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness. It deliberately does not touch
// the database: a wedged pool should not take the probe down with it.
//
//	@Summary		Health check
//	@Description	Check if the invoice service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Service is healthy"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "invoice-api",
	})
}
