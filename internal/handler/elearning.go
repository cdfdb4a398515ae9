package handler

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/logger"
	"learnpath/internal/middleware"
	"learnpath/internal/render"
	"learnpath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultMaxTime = 40

// ElearningHandler serves recommendations as JSON, HTML pages and fragments.
type ElearningHandler struct {
	service    service.ElearningService
	renderer   *render.Renderer
	maxCards   int
	categories []string
}

// NewElearningHandler creates a new ElearningHandler instance
func NewElearningHandler(service service.ElearningService, renderer *render.Renderer, maxCards int, categories []string) *ElearningHandler {
	return &ElearningHandler{
		service:    service,
		renderer:   renderer,
		maxCards:   maxCards,
		categories: categories,
	}
}

// GetData godoc
// @Summary Filter recommendations
// @Description Returns catalog entries for a quiz score, topics, time budget and type. When nothing matches, entries below the user's level are listed instead.
// @Tags elearning
// @Produce json
// @Param score query number false "Quiz score"
// @Param topic query string false "Comma-separated topics"
// @Param time query number false "Maximum time investment in hours"
// @Param type query string false "Item type" Enums(all, Workshop, E-Learning, Guide)
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /data [get]
func (h *ElearningHandler) GetData(c *fiber.Ctx) error {
	result, err := h.filter(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToDataResponse(result))
}

// GetCourses godoc
// @Summary List the catalog
// @Description Returns every active catalog entry in catalog order.
// @Tags elearning
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/courses [get]
func (h *ElearningHandler) GetCourses(c *fiber.Ctx) error {
	items, err := h.service.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCourseResponses(items))
}

// GridFragment renders the results grid for the /data parameters.
func (h *ElearningHandler) GridFragment(c *fiber.Ctx) error {
	result, err := h.filter(c)
	if err != nil {
		return err
	}
	if result.Status != "" {
		c.Set("X-Results-Status", result.Status)
	}
	c.Type("html", "utf-8")
	return h.renderer.Cards(c, h.cards(result))
}

// ResultsPage serves the results screen, pre-rendered with the first grid.
func (h *ElearningHandler) ResultsPage(c *fiber.Ctx) error {
	req, ok := middleware.FilterRequestFromCtx(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	ctx := c.UserContext()

	catalog, err := h.service.ListActive(ctx)
	if err != nil {
		return err
	}
	result, err := h.service.Filter(ctx, req)
	if err != nil {
		return err
	}

	page := render.ResultsPage{
		Score:      req.Score,
		Topic:      strings.Join(req.Topics, ","),
		Time:       strconv.FormatFloat(req.Time, 'f', -1, 64),
		MaxTime:    maxTime(catalog),
		Categories: h.categories,
		Topics:     topicOptions(catalog, req.Topics),
		Status:     result.Status,
		Cards:      h.cards(result),
	}

	var buf bytes.Buffer
	if err := h.renderer.ResultsPage(&buf, page); err != nil {
		logger.Get().Error("Failed to render results page", zap.Error(err))
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (h *ElearningHandler) filter(c *fiber.Ctx) (*domain.FilterResult, error) {
	req, ok := middleware.FilterRequestFromCtx(c)
	if !ok {
		return nil, fiber.ErrBadRequest
	}
	return h.service.Filter(c.UserContext(), req)
}

func (h *ElearningHandler) cards(result *domain.FilterResult) []render.Card {
	return render.NewCards(dto.ToDataResponse(result).Data, h.maxCards)
}

// topicOptions lists the distinct catalog topics in catalog order, checking
// the selected ones. Selected topics missing from the catalog are appended.
func topicOptions(catalog []*domain.Elearning, selected []string) []render.TopicOption {
	checked := make(map[string]bool, len(selected))
	for _, s := range selected {
		checked[s] = true
	}

	seen := make(map[string]bool)
	var out []render.TopicOption
	add := func(topic string) {
		if topic == "" || seen[topic] {
			return
		}
		seen[topic] = true
		out = append(out, render.TopicOption{Value: topic, Checked: checked[topic]})
	}
	for _, e := range catalog {
		add(e.Onderwerp)
	}
	for _, s := range selected {
		add(s)
	}
	return out
}

func maxTime(catalog []*domain.Elearning) int {
	var max float64
	for _, e := range catalog {
		if e.Tijdsinvestering > max {
			max = e.Tijdsinvestering
		}
	}
	if max == 0 {
		return defaultMaxTime
	}
	return int(math.Ceil(max))
}
