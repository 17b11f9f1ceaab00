package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Pexels Search Proxy",
			"version":     "1.0.0",
			"description": "Server-side proxy for the Pexels image search API",
			"status":      "running",
		})
	}
}
