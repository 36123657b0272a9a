package middlewares

import (
	"bytes"

	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// GinBodyLogMiddleware logs response bodies at debug level. Request bodies carry
// webhook URLs, which are credentials, so only their size is recorded.
func GinBodyLogMiddleware(loggerInstance *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw
		c.Next()

		loggerInstance.Debug("Response body",
			zap.String("path", c.Request.URL.Path),
			zap.Int64("requestBytes", c.Request.ContentLength),
			zap.Int("status", c.Writer.Status()),
			zap.String("body", blw.body.String()))
	}
}
