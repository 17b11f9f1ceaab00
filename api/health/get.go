package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/imagegrid/pexels-proxy/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		// Add upstream client status
		if deps != nil && deps.PexelsClient != nil {
			response["upstream"] = gin.H{"status": "configured"}
		} else {
			response["upstream"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}
