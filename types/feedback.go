package types

import "time"

// AnonymousUsername is rendered in place of a NULL username. It is never stored.
const AnonymousUsername = "anonymous"

// Field length limits in Unicode code points.
const (
	MaxUsernameLength = 100
	MaxMessageLength  = 1000
)

// Feedback represents a feedback entry stored in the database.
// Username and Message hold the sanitized values.
type Feedback struct {
	ID        int64     `json:"id"`
	Username  *string   `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackCreate represents the request body for submitting feedback.
// Field constraints are checked by the validation package, not by gin binding.
type FeedbackCreate struct {
	Username *string `json:"username,omitempty" example:"Alice"`
	Message  *string `json:"message" example:"Great service!"`
}

// FeedbackResponse is the rendered form of a Feedback entry.
type FeedbackResponse struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"Alice"`
	Message   string    `json:"message" example:"Great service!"`
	CreatedAt time.Time `json:"createdAt" example:"2025-11-22T10:30:00Z"`
}

// NewFeedbackResponse renders a stored entry, substituting AnonymousUsername
// when no username was stored.
func NewFeedbackResponse(fb Feedback) FeedbackResponse {
	username := AnonymousUsername
	if fb.Username != nil {
		username = *fb.Username
	}
	return FeedbackResponse{
		ID:        fb.ID,
		Username:  username,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt,
	}
}

// FeedbackListParams are the query parameters accepted by the list endpoint.
// Size has no tag default; the handler presets the configured default before
// binding.
type FeedbackListParams struct {
	Username string `form:"username"`
	Page     int    `form:"page,default=0"`
	Size     int    `form:"size"`
}
