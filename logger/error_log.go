package logger

import (
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// LogHTTPError logs a failed request with the context gin holds for it.
// Client errors are logged at warn level, everything else at error level with
// a stack trace outside production.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status_code", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("client_ip", c.ClientIP()),
		zap.Any("headers", filterSensitiveHeaders(c.Request.Header)),
	}

	if requestID := c.GetString(RequestIDKey); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	log := GetLogger().Desugar()
	if statusCode >= 400 && statusCode < 500 {
		log.Warn(message, fields...)
		return
	}

	if os.Getenv("SERVER_ENVIRONMENT") != "production" {
		fields = append(fields, zap.String("stack_trace", getStackTrace(3)))
	}
	log.Error(message, fields...)
}

// getStackTrace captures a stack trace starting from the specified skip level
func getStackTrace(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "runtime.") {
			builder.WriteString(frame.Function)
			builder.WriteString("\n\t")
			builder.WriteString(frame.File)
			builder.WriteString(":")
			builder.WriteString(strconv.Itoa(frame.Line))
			builder.WriteString("\n")
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// filterSensitiveHeaders removes sensitive information from headers before logging
func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string)

	for name, values := range headers {
		lower := strings.ToLower(name)
		if lower == "authorization" ||
			lower == "cookie" ||
			strings.Contains(lower, "token") ||
			strings.Contains(lower, "key") ||
			strings.Contains(lower, "secret") {
			filtered[name] = "[REDACTED]"
			continue
		}

		if len(values) > 0 {
			filtered[name] = values[0]
		}
	}

	return filtered
}
