package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter caps request bodies. The upload routes mount it with the
// CSV size cap so an oversized file is refused before any of it is parsed.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var w http.ResponseWriter = c.Writer
		c.Request.Body = http.MaxBytesReader(w, c.Request.Body, maxSize)

		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "File exceeds the 10MB upload limit",
			})
			return
		}

		c.Next()
	}
}
