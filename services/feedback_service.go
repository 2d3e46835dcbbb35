package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	apperrors "github.com/NomadCrew/feedback-service/errors"
	"github.com/NomadCrew/feedback-service/internal/store"
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/pkg/sanitize"
	"github.com/NomadCrew/feedback-service/types"
	"go.uber.org/zap"
)

const (
	msgNegativePage  = "Page index must not be less than zero"
	msgNonPositiveSz = "Page size must not be less than one"
)

// FeedbackService stores sanitized feedback and renders stored entries for
// the API. It holds no state between calls.
type FeedbackService struct {
	store      store.FeedbackStore
	publisher  types.EventPublisher
	dispatcher JobSubmitter
	pagination config.PaginationConfig
	log        *zap.SugaredLogger
	now        func() time.Time
}

// NewFeedbackService wires the service. When dispatcher is nil events are
// published inline.
func NewFeedbackService(
	feedbackStore store.FeedbackStore,
	publisher types.EventPublisher,
	dispatcher JobSubmitter,
	pagination config.PaginationConfig,
) *FeedbackService {
	return &FeedbackService{
		store:      feedbackStore,
		publisher:  publisher,
		dispatcher: dispatcher,
		pagination: pagination,
		log:        logger.GetLogger().Named("feedback"),
		now:        time.Now,
	}
}

// CreateFeedback sanitizes username and message, stores them and returns the
// rendered entry. A feedback.created event is published afterwards; failing
// to publish never fails the call.
func (s *FeedbackService) CreateFeedback(ctx context.Context, username *string, message string) (*types.FeedbackResponse, error) {
	s.log.Infow("Creating feedback",
		"username", derefOr(username, types.AnonymousUsername),
		"messageLength", len([]rune(message)))

	cleanUsername := sanitize.Clean(username)
	if cleanUsername != nil && *cleanUsername == "" {
		cleanUsername = nil
	}
	cleanMessage := sanitize.CleanString(message)
	if strings.TrimSpace(cleanMessage) == "" {
		// the input consisted only of stripped markup
		return nil, apperrors.ValidationFailed([]types.FieldError{{
			Field:   "message",
			Message: "message must not be blank after removing disallowed content",
		}})
	}

	fb, err := s.store.Insert(ctx, cleanUsername, cleanMessage)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	feedbackCreatedTotal.Inc()
	s.publishCreated(ctx, *fb)

	s.log.Infow("Feedback created", "id", fb.ID)
	resp := types.NewFeedbackResponse(*fb)
	return &resp, nil
}

// GetAllFeedbacks returns one page of all entries, newest first.
func (s *FeedbackService) GetAllFeedbacks(ctx context.Context, page, size int) (*types.PageResponse[types.FeedbackResponse], error) {
	s.log.Debugw("Listing feedbacks", "page", page, "size", size)

	size, err := s.checkPage(page, size)
	if err != nil {
		return nil, err
	}

	result, err := s.store.ListAll(ctx, page, size)
	if err != nil {
		return nil, s.listError(err)
	}

	feedbackListedTotal.WithLabelValues("all").Inc()
	return types.NewPageResponse(types.MapPage(result, types.NewFeedbackResponse)), nil
}

// GetFeedbacksByUsername returns one page of the entries stored under exactly
// username.
func (s *FeedbackService) GetFeedbacksByUsername(ctx context.Context, username string, page, size int) (*types.PageResponse[types.FeedbackResponse], error) {
	s.log.Debugw("Listing feedbacks by username", "username", username, "page", page, "size", size)

	size, err := s.checkPage(page, size)
	if err != nil {
		return nil, err
	}

	result, err := s.store.ListByUsername(ctx, username, page, size)
	if err != nil {
		return nil, s.listError(err)
	}

	feedbackListedTotal.WithLabelValues("username").Inc()
	return types.NewPageResponse(types.MapPage(result, types.NewFeedbackResponse)), nil
}

// checkPage rejects impossible page requests and clamps size to the
// configured maximum.
func (s *FeedbackService) checkPage(page, size int) (int, error) {
	if page < 0 {
		return 0, apperrors.BadRequest(msgNegativePage)
	}
	if size < 1 {
		return 0, apperrors.BadRequest(msgNonPositiveSz)
	}
	if s.pagination.MaxSize > 0 && size > s.pagination.MaxSize {
		s.log.Debugw("Clamping page size", "requested", size, "max", s.pagination.MaxSize)
		size = s.pagination.MaxSize
	}
	return size, nil
}

func (s *FeedbackService) listError(err error) error {
	if stderrors.Is(err, store.ErrInvalidPage) {
		return apperrors.BadRequest(err.Error())
	}
	return apperrors.NewDatabaseError(err)
}

func (s *FeedbackService) publishCreated(ctx context.Context, fb types.Feedback) {
	if s.publisher == nil {
		return
	}
	event := types.NewFeedbackCreatedEvent(fb, s.now())

	if s.dispatcher == nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warnw("Failed to publish feedback event", "id", fb.ID, "error", err)
		}
		return
	}

	submitted := s.dispatcher.Submit(Job{
		Name: "publish-feedback-created",
		Execute: func(jobCtx context.Context) error {
			return s.publisher.Publish(jobCtx, event)
		},
	})
	if !submitted {
		s.log.Warnw("Feedback event dropped", "id", fb.ID)
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
