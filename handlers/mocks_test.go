package handlers

import (
	"context"

	"github.com/NomadCrew/feedback-service/types"
	"github.com/stretchr/testify/mock"
)

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) CreateFeedback(ctx context.Context, username *string, message string) (*types.FeedbackResponse, error) {
	args := m.Called(ctx, username, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) GetAllFeedbacks(ctx context.Context, page, size int) (*types.PageResponse[types.FeedbackResponse], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PageResponse[types.FeedbackResponse]), args.Error(1)
}

func (m *MockFeedbackService) GetFeedbacksByUsername(ctx context.Context, username string, page, size int) (*types.PageResponse[types.FeedbackResponse], error) {
	args := m.Called(ctx, username, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PageResponse[types.FeedbackResponse]), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	return m.Called(ctx).Get(0).(types.HealthCheck)
}

func (m *MockHealthService) CheckReadiness(ctx context.Context) types.HealthCheck {
	return m.Called(ctx).Get(0).(types.HealthCheck)
}

func (m *MockHealthService) CheckLiveness() types.HealthCheck {
	return m.Called().Get(0).(types.HealthCheck)
}
