package types

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeFeedbackCreated EventType = "feedback.created"
)

// FeedbackEvent is fanned out to subscribers after a feedback entry has been
// stored. Username is null for anonymous entries.
type FeedbackEvent struct {
	EventID     string    `json:"eventId"`
	Type        EventType `json:"type"`
	FeedbackID  int64     `json:"id"`
	Username    *string   `json:"username"`
	CreatedAt   time.Time `json:"createdAt"`
	PublishedAt time.Time `json:"publishedAt"`
}

// NewFeedbackCreatedEvent describes the creation of fb.
func NewFeedbackCreatedEvent(fb Feedback, now time.Time) FeedbackEvent {
	return FeedbackEvent{
		EventID:     uuid.NewString(),
		Type:        EventTypeFeedbackCreated,
		FeedbackID:  fb.ID,
		Username:    fb.Username,
		CreatedAt:   fb.CreatedAt,
		PublishedAt: now.UTC(),
	}
}

// Validate checks the fields every subscriber relies on.
func (e FeedbackEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("event ID is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if e.FeedbackID <= 0 {
		return fmt.Errorf("feedback ID must be positive")
	}
	if e.PublishedAt.IsZero() {
		return fmt.Errorf("published timestamp is required")
	}
	return nil
}

// EventPublisher delivers feedback events to interested subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event FeedbackEvent) error
}
