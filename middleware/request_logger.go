package middleware

import (
	"time"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request once the response is written.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.GetLogger()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
			"requestId", c.GetString(logger.RequestIDKey),
		}
		if c.Writer.Status() >= 500 {
			log.Warnw("Request completed", fields...)
			return
		}
		log.Infow("Request completed", fields...)
	}
}
