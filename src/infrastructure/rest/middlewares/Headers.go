package middlewares

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/gofrs/uuid"
)

const requestIDHeader = "X-Request-ID"

// CommonHeaders tags every response with a request ID and disables caching.
// An incoming X-Request-ID is kept so callers can correlate logs.
func CommonHeaders(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		if u, err := uuid.NewV4(); err == nil {
			requestID = u.String()
		}
	}
	c.Set("requestID", requestID)

	c.Header(requestIDHeader, requestID)
	c.Header("Cache-Control", "no-store")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Next()
}
