package types

import "time"

// Default envelope messages.
const (
	MessageCreated = "created"
	MessageSuccess = "success"
)

// APIResponse is the envelope wrapped around every successful response.
type APIResponse[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"success"`
	Data    T      `json:"data"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field" example:"message"`
	Message string `json:"message" example:"message is required"`
}

// ErrorResponse is the body returned for every 4xx/5xx response.
type ErrorResponse struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status" example:"400"`
	Error       string       `json:"error" example:"Validation Failed"`
	Message     string       `json:"message" example:"Input validation failed"`
	Path        string       `json:"path" example:"/feedbacks"`
	FieldErrors []FieldError `json:"fieldErrors"`
}
