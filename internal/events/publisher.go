// Package events fans out notifications about stored feedback entries.
package events

import (
	"context"

	"github.com/NomadCrew/feedback-service/types"
)

// NoopPublisher discards every event. It is used when Redis is disabled.
type NoopPublisher struct{}

// Ensure NoopPublisher implements types.EventPublisher
var _ types.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, types.FeedbackEvent) error {
	return nil
}
