package handlers

import (
	"net/http"
	"strings"

	apperrors "github.com/NomadCrew/feedback-service/errors"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/NomadCrew/feedback-service/validation"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback submission and listing endpoints.
type FeedbackHandler struct {
	feedbackService FeedbackServiceInterface
	defaultPageSize int
}

// NewFeedbackHandler creates a new FeedbackHandler. defaultPageSize is used
// when a list request carries no size parameter.
func NewFeedbackHandler(feedbackService FeedbackServiceInterface, defaultPageSize int) *FeedbackHandler {
	if defaultPageSize < 1 {
		defaultPageSize = 20
	}
	return &FeedbackHandler{
		feedbackService: feedbackService,
		defaultPageSize: defaultPageSize,
	}
}

// CreateFeedbackHandler godoc
// @Summary      Submit feedback
// @Description  Stores a feedback message. The username is optional; entries without one are listed as "anonymous".
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeedbackCreate  true  "Feedback payload"
// @Success      201   {object}  types.APIResponse[types.FeedbackResponse]
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /feedbacks [post]
func (h *FeedbackHandler) CreateFeedbackHandler(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	input, fieldErrors := validation.ValidateFeedbackCreate(req)
	if len(fieldErrors) > 0 {
		_ = c.Error(apperrors.ValidationFailed(fieldErrors))
		return
	}

	resp, err := h.feedbackService.CreateFeedback(c.Request.Context(), input.Username, input.Message)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.NewSuccessResponse(types.MessageCreated, resp))
}

// ListFeedbacksHandler godoc
// @Summary      List feedback
// @Description  Returns one page of feedback entries, newest first. A non-blank username filters on an exact match.
// @Tags         feedback
// @Produce      json
// @Param        username  query     string  false  "Exact username to filter by"
// @Param        page      query     int     false  "Zero-based page index"  default(0)
// @Param        size      query     int     false  "Page size"  default(20)
// @Success      200       {object}  types.APIResponse[types.PageResponse[types.FeedbackResponse]]
// @Failure      400       {object}  types.ErrorResponse
// @Failure      500       {object}  types.ErrorResponse
// @Router       /feedbacks [get]
func (h *FeedbackHandler) ListFeedbacksHandler(c *gin.Context) {
	params := types.FeedbackListParams{Size: h.defaultPageSize}
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(apperrors.BadRequest("page and size must be integers"))
		return
	}

	var (
		page *types.PageResponse[types.FeedbackResponse]
		err  error
	)
	username := strings.TrimSpace(params.Username)
	if username == "" {
		page, err = h.feedbackService.GetAllFeedbacks(c.Request.Context(), params.Page, params.Size)
	} else {
		page, err = h.feedbackService.GetFeedbacksByUsername(c.Request.Context(), username, params.Page, params.Size)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.NewSuccessResponse(types.MessageSuccess, page))
}

// bindJSONOrError binds the request body and records a bind error on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}
