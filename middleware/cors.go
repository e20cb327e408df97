package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the dashboard frontend origin. DASHBOARD_ORIGIN
// should be the exact origin the React app is served from.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("DASHBOARD_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers",
			"X-Request-ID, Content-Disposition")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
