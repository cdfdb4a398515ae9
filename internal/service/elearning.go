package service

import (
	"context"
	"errors"
	"strings"

	"learnpath/internal/cache"
	"learnpath/internal/config"
	"learnpath/internal/domain"
	"learnpath/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ElearningService answers recommendation queries over the catalog.
type ElearningService interface {
	Filter(ctx context.Context, req domain.FilterRequest) (*domain.FilterResult, error)
	ListActive(ctx context.Context) ([]*domain.Elearning, error)
	ListCatalog(ctx context.Context) ([]*domain.Elearning, error)
	ReplaceCatalog(ctx context.Context, items []*domain.Elearning) error
	SaveCourse(ctx context.Context, item *domain.Elearning) error
	SetCourseStatus(ctx context.Context, id, status string) error
}

type elearningService struct {
	repo       domain.ElearningRepository
	results    ResultsCacheService
	thresholds []int
	group      singleflight.Group
}

// NewElearningService creates a new instance of elearningService
func NewElearningService(repo domain.ElearningRepository, results ResultsCacheService, cfg config.RecommendationConfig) ElearningService {
	if results == nil {
		results = noopResultsCacheService{}
	}
	return &elearningService{
		repo:       repo,
		results:    results,
		thresholds: cfg.LevelThresholds,
	}
}

// Filter implements ElearningService. Results are read through the cache;
// concurrent identical misses share one database round trip.
func (s *elearningService) Filter(ctx context.Context, req domain.FilterRequest) (*domain.FilterResult, error) {
	key := cache.ResultsKey(req)

	cached, err := s.results.Get(ctx, key)
	if err == nil {
		logger.Get().Debug("Filter result cache hit", zap.String("key", key))
		return cached, nil
	}
	if !errors.Is(err, ErrResultNotFound) {
		logger.Get().Warn("Filter result cache unavailable, querying catalog", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		res, err := s.filter(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := s.results.Put(ctx, key, res); err != nil {
			logger.Get().Warn("Failed to cache filter result", zap.String("key", key), zap.Error(err))
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Filter result shared between callers", zap.String("key", key))
	}
	return v.(*domain.FilterResult), nil
}

func (s *elearningService) filter(ctx context.Context, req domain.FilterRequest) (*domain.FilterResult, error) {
	level := LevelForScore(req.Score, s.thresholds)

	typ := req.Type
	if strings.EqualFold(typ, "all") {
		typ = ""
	}

	items, err := s.repo.Find(ctx, domain.ElearningQuery{
		Type:       typ,
		Topics:     req.Topics,
		MaxTime:    req.Time,
		LimitLevel: level > 0,
		MaxLevel:   level,
	})
	if err != nil {
		return nil, domain.NewCatalogError("Failed to filter elearnings", err)
	}
	if len(items) > 0 {
		return &domain.FilterResult{Status: domain.StatusMatched, Items: items}, nil
	}

	// Nothing matched: list everything strictly below the user's level.
	fallback := domain.ElearningQuery{}
	if level > 0 {
		fallback.LimitLevel = true
		fallback.MaxLevel = level - 1
	}
	items, err = s.repo.Find(ctx, fallback)
	if err != nil {
		return nil, domain.NewCatalogError("Failed to list fallback elearnings", err)
	}
	logger.Get().Debug("No elearnings matched, using fallback",
		zap.Float64("score", req.Score),
		zap.Int("level", level),
		zap.Strings("topics", req.Topics),
		zap.Int("fallback_count", len(items)))
	return &domain.FilterResult{Status: domain.StatusFallback, Items: items}, nil
}

// ListActive implements ElearningService
func (s *elearningService) ListActive(ctx context.Context) ([]*domain.Elearning, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, domain.NewCatalogError("Failed to list elearnings", err)
	}
	return items, nil
}

// ReplaceCatalog implements ElearningService. Cached results are dropped
// afterwards.
func (s *elearningService) ReplaceCatalog(ctx context.Context, items []*domain.Elearning) error {
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return domain.NewCatalogError("Failed to replace catalog", err)
	}
	s.invalidate(ctx)
	logger.Get().Info("Catalog replaced", zap.Int("count", len(items)))
	return nil
}

// ListCatalog implements ElearningService. Unlike ListActive it includes
// inactive entries.
func (s *elearningService) ListCatalog(ctx context.Context) ([]*domain.Elearning, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.NewCatalogError("Failed to list catalog", err)
	}
	return items, nil
}

// SaveCourse implements ElearningService. An item without ID is added,
// otherwise the stored entry with that ID is overwritten.
func (s *elearningService) SaveCourse(ctx context.Context, item *domain.Elearning) error {
	if item == nil {
		return domain.NewInvalidInputError("course is required")
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return catalogError("Failed to save course", err)
	}
	s.invalidate(ctx)
	logger.Get().Info("Course saved", zap.String("id", item.ID), zap.String("titel", item.Titel), zap.String("status", item.Status))
	return nil
}

// SetCourseStatus implements ElearningService
func (s *elearningService) SetCourseStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return domain.NewInvalidInputError("course id is required")
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return catalogError("Failed to set course status", err)
	}
	s.invalidate(ctx)
	logger.Get().Info("Course status changed", zap.String("id", id), zap.String("status", status))
	return nil
}

// invalidate drops cached results; a failure is logged since entries expire
// anyway.
func (s *elearningService) invalidate(ctx context.Context) {
	if err := s.results.InvalidateAll(ctx); err != nil {
		logger.Get().Warn("Failed to invalidate cached results", zap.Error(err))
	}
}

// catalogError keeps domain errors from the repository and wraps the rest.
func catalogError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewCatalogError(message, err)
}
