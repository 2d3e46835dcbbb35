package errors

import (
	"fmt"
	"net/http"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/types"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	BadRequestError ErrorType = "BAD_REQUEST"
	NotFoundError   ErrorType = "NOT_FOUND"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// Client-facing messages.
const (
	MsgValidationFailed = "Input validation failed"
	MsgInternalError    = "An internal server error occurred"
)

// AppError represents a structured application error
type AppError struct {
	Type        ErrorType          `json:"type"`
	Message     string             `json:"message"`
	Detail      string             `json:"detail,omitempty"`
	FieldErrors []types.FieldError `json:"fieldErrors,omitempty"`
	HTTPStatus  int                `json:"-"`
	Raw         error              `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status code the error is rendered with.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// StatusText is the short reason phrase placed in the "error" field of the
// error payload.
func (e *AppError) StatusText() string {
	if e.Type == ValidationError {
		return "Validation Failed"
	}
	return http.StatusText(e.GetHTTPStatus())
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports one or more violated field constraints.
func ValidationFailed(fieldErrors []types.FieldError) *AppError {
	err := New(ValidationError, MsgValidationFailed, "")
	err.FieldErrors = fieldErrors
	return err
}

// BadRequest reports an illegal argument. The message is shown to the client.
func BadRequest(message string) *AppError {
	return New(BadRequestError, message, "")
}

func NotFound(entity string, id interface{}) *AppError {
	return New(NotFoundError, fmt.Sprintf("%s not found", entity), fmt.Sprintf("ID: %v", id))
}

func NewDatabaseError(err error) *AppError {
	// Log original error but return sanitized message
	logger.GetLogger().Errorw("Database error", "error", err)
	appErr := Wrap(err, DatabaseError, MsgInternalError)
	if appErr != nil {
		appErr.Detail = "Please try again later"
	}
	return appErr
}

// InternalServerError wraps an error that carries no application context.
// The cause stays in Raw and never reaches the client.
func InternalServerError(err error) *AppError {
	if err == nil {
		return New(ServerError, MsgInternalError, "")
	}
	return Wrap(err, ServerError, MsgInternalError)
}

// IsClientError reports whether the error should be shown to the caller
// verbatim.
func (e *AppError) IsClientError() bool {
	status := e.GetHTTPStatus()
	return status >= 400 && status < 500
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
