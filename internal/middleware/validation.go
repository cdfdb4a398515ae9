package middleware

import (
	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	filterRequestKey = "validated_filter_request"
	questionIndexKey = "validated_question_index"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(categories []string) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(categories),
	}
}

// ValidateDataParams validates the /data query string and stores the
// normalized domain.FilterRequest for the handler.
func (vm *ValidationMiddleware) ValidateDataParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw dto.DataRequest
		if err := c.QueryParser(&raw); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("query", string(c.Request().URI().QueryString()))}
		}

		req, errs := vm.validator.ValidateDataRequest(raw)
		if len(errs) > 0 {
			return errs
		}

		c.Locals(filterRequestKey, req)
		return c.Next()
	}
}

// ValidateQuestionIndex validates the :index path parameter
func (vm *ValidationMiddleware) ValidateQuestionIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, errs := vm.validator.ValidateQuestionIndex(c.Params("index"))
		if len(errs) > 0 {
			return errs
		}

		c.Locals(questionIndexKey, index)
		return c.Next()
	}
}

// FilterRequestFromCtx returns the request stored by ValidateDataParams.
func FilterRequestFromCtx(c *fiber.Ctx) (domain.FilterRequest, bool) {
	req, ok := c.Locals(filterRequestKey).(domain.FilterRequest)
	return req, ok
}

// QuestionIndexFromCtx returns the index stored by ValidateQuestionIndex.
func QuestionIndexFromCtx(c *fiber.Ctx) (int, bool) {
	index, ok := c.Locals(questionIndexKey).(int)
	return index, ok
}
