package middleware

import (
	"net/http"

	"flight-scheduler-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses with a logged stack reference
// instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": GetRequestID(c),
		})
	})
}
