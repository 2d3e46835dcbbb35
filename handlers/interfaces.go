package handlers

import (
	"context"

	"github.com/NomadCrew/feedback-service/types"
)

// FeedbackServiceInterface defines the feedback service methods needed by handlers
type FeedbackServiceInterface interface {
	CreateFeedback(ctx context.Context, username *string, message string) (*types.FeedbackResponse, error)
	GetAllFeedbacks(ctx context.Context, page, size int) (*types.PageResponse[types.FeedbackResponse], error)
	GetFeedbacksByUsername(ctx context.Context, username string, page, size int) (*types.PageResponse[types.FeedbackResponse], error)
}

// HealthServiceInterface defines the health checks exposed over HTTP
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
	CheckReadiness(ctx context.Context) types.HealthCheck
	CheckLiveness() types.HealthCheck
}
