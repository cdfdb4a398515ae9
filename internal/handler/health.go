package handler

import (
	"context"
	"time"

	"learnpath/internal/domain"
	"learnpath/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// QuestionCounter is satisfied by service.QuizService.
type QuestionCounter interface {
	CountQuestions(ctx context.Context) (int, error)
}

// HealthHandler reports database and cache reachability and the size of the
// question bank.
type HealthHandler struct {
	db        Pinger
	cache     domain.Cache
	questions QuestionCounter
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is
// disabled.
func NewHealthHandler(db Pinger, cache domain.Cache, questions QuestionCounter) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, questions: questions}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	body := fiber.Map{"status": "ok", "database": "ok", "cache": "disabled"}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Database health check failed", zap.Error(err))
		status = fiber.StatusServiceUnavailable
		body["status"], body["database"] = "degraded", "unreachable"
	} else {
		// An empty bank ends every quiz before the first question.
		n, err := h.questions.CountQuestions(ctx)
		switch {
		case err != nil:
			logger.Get().Warn("Question bank health check failed", zap.Error(err))
			status = fiber.StatusServiceUnavailable
			body["status"], body["questions"] = "degraded", "unavailable"
		case n == 0:
			status = fiber.StatusServiceUnavailable
			body["status"], body["questions"] = "degraded", 0
		default:
			body["questions"] = n
		}
	}
	if h.cache != nil {
		body["cache"] = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			// The database stays authoritative, so a cache outage is reported
			// without failing the check.
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			body["cache"] = "unreachable"
		}
	}
	return c.Status(status).JSON(body)
}
