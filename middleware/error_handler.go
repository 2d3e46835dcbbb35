package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NomadCrew/feedback-service/errors"
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/gin-gonic/gin"
)

// MsgMalformedRequest is returned when the request body cannot be decoded.
const MsgMalformedRequest = "Malformed JSON request"

// ErrorHandler renders the last error pushed with c.Error as a
// types.ErrorResponse. Client errors keep their message; server errors are
// logged with their cause and answered with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		err := last.Err

		var appError *errors.AppError
		if !stderrors.As(err, &appError) {
			if last.Type == gin.ErrorTypeBind {
				logger.LogHTTPError(c, err, http.StatusBadRequest, "Request binding error")
				writeError(c, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), MsgMalformedRequest, nil)
				return
			}
			appError = errors.InternalServerError(err)
		}

		statusCode := appError.GetHTTPStatus()
		logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

		message := appError.Message
		if !appError.IsClientError() {
			message = errors.MsgInternalError
		}
		writeError(c, statusCode, appError.StatusText(), message, appError.FieldErrors)
	}
}

// NotFoundHandler is installed as the NoRoute handler.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(errors.NotFound("Route", c.Request.Method+" "+c.Request.URL.Path))
	}
}

func writeError(c *gin.Context, status int, errText, message string, fieldErrors []types.FieldError) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{
		Timestamp:   time.Now().UTC(),
		Status:      status,
		Error:       errText,
		Message:     message,
		Path:        c.Request.URL.Path,
		FieldErrors: fieldErrors,
	})
}
