package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit function is a middleware that check if request body is larger than maxBodyBytes or not
// will return http.MaxBytesError when body size exceed maxBodyBytes
// and usually response with 413 request entity too large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := c.Writer

		c.Request.Body = http.MaxBytesReader(w, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
