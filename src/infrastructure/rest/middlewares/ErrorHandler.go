package middlewares

import (
	"net/http"

	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler logs every error attached with ctx.Error and renders the last
// one when the handler did not write a body itself.
func ErrorHandler(loggerInstance *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			loggerInstance.Error("Request failed",
				zap.Error(e.Err),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.String("requestID", c.GetString("requestID")))
		}

		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"success": false, "error": c.Errors.Last().Error()})
	}
}
