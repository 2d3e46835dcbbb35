// Package validation checks request payloads before they reach the service
// layer and reports every violated field at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/NomadCrew/feedback-service/types"
	"github.com/go-playground/validator/v10"
)

// Length aliases expand to max=<limit> from the types package.
const (
	tagUsernameLen = "username_len"
	tagMessageLen  = "message_len"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterAlias(tagUsernameLen, fmt.Sprintf("max=%d", types.MaxUsernameLength))
		validate.RegisterAlias(tagMessageLen, fmt.Sprintf("max=%d", types.MaxMessageLength))
	})
	return validate
}

// feedbackInput mirrors types.FeedbackCreate after trimming. Lengths count
// Unicode code points, not bytes.
type feedbackInput struct {
	Username string `json:"username" validate:"omitempty,username_len"`
	Message  string `json:"message" validate:"required,message_len"`
}

// NewFeedback is a create request that passed validation. Username is nil when
// the client sent none or only whitespace.
type NewFeedback struct {
	Username *string
	Message  string
}

// ValidateFeedbackCreate trims the request and checks it against the field
// constraints. On failure it returns one FieldError per violated field, in
// declaration order.
func ValidateFeedbackCreate(req types.FeedbackCreate) (*NewFeedback, []types.FieldError) {
	in := feedbackInput{}
	if req.Username != nil {
		in.Username = strings.TrimSpace(*req.Username)
	}
	if req.Message != nil {
		in.Message = strings.TrimSpace(*req.Message)
	}

	if err := getValidator().Struct(in); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, []types.FieldError{{Field: "request", Message: err.Error()}}
		}
		return nil, toFieldErrors(validationErrors)
	}

	out := &NewFeedback{Message: in.Message}
	if in.Username != "" {
		username := in.Username
		out.Username = &username
	}
	return out, nil
}

func toFieldErrors(errs validator.ValidationErrors) []types.FieldError {
	fieldErrors := make([]types.FieldError, 0, len(errs))
	for _, fe := range errs {
		fieldErrors = append(fieldErrors, types.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
