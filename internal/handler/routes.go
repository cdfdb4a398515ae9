package handler

import (
	"learnpath/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Quiz       *QuizHandler
	Elearning  *ElearningHandler
	Health     *HealthHandler
	Validation *middleware.ValidationMiddleware
}

// SetupRoutes registers the pages, the quiz and recommendation endpoints
// and the health check. resultsPath is where the quiz navigates on
// completion.
func SetupRoutes(app *fiber.App, h Handlers, resultsPath string) {
	app.Get("/", h.Quiz.QuizPage)
	app.Get("/quiz/question/:index", h.Validation.ValidateQuestionIndex(), h.Quiz.GetQuestion)

	app.Get("/data", h.Validation.ValidateDataParams(), h.Elearning.GetData)
	app.Get(resultsPath, h.Validation.ValidateDataParams(), h.Elearning.ResultsPage)
	app.Get(resultsPath+"/grid", h.Validation.ValidateDataParams(), h.Elearning.GridFragment)

	api := app.Group("/api")
	api.Get("/courses", h.Elearning.GetCourses)

	app.Get("/health", h.Health.Check)
}
