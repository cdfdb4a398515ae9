package handler

import (
	"learnpath/internal/middleware"
	"learnpath/internal/render"
	"learnpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service  service.QuizService
	renderer *render.Renderer
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, renderer *render.Renderer) *QuizHandler {
	return &QuizHandler{
		service:  service,
		renderer: renderer,
	}
}

// GetQuestion godoc
// @Summary Get a quiz question
// @Description Returns the question at the given zero-based position. Past the last question the response is 404, which ends the quiz.
// @Tags quiz
// @Produce json
// @Param index path int true "Question index"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/question/{index} [get]
func (h *QuizHandler) GetQuestion(c *fiber.Ctx) error {
	index, ok := middleware.QuestionIndexFromCtx(c)
	if !ok {
		var err error
		if index, err = c.ParamsInt("index"); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "index must be an integer")
		}
	}

	question, err := h.service.GetQuestion(c.UserContext(), index)
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// QuizPage serves the quiz screen.
func (h *QuizHandler) QuizPage(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return h.renderer.QuizPage(c, render.QuizPage{FirstQuestionURL: "/quiz/question/0"})
}
