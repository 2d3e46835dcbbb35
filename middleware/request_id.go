package middleware

import (
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware reuses an incoming X-Request-ID (set by a proxy) or
// generates one, and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
