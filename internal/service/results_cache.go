package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"learnpath/internal/cache"
	"learnpath/internal/domain"
	"learnpath/internal/logger"

	"go.uber.org/zap"
)

// ErrResultNotFound is returned when no cached filter result exists.
var ErrResultNotFound = errors.New("filter result not found in cache")

// ResultsCacheService stores /data results keyed by cache.ResultsKey.
type ResultsCacheService interface {
	Put(ctx context.Context, key string, result *domain.FilterResult) error
	Get(ctx context.Context, key string) (*domain.FilterResult, error)
	InvalidateAll(ctx context.Context) error
}

type resultsCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultsCacheService creates a ResultsCacheService. With a nil cache the
// returned service is a no-op that always misses.
func NewResultsCacheService(c domain.Cache, ttl time.Duration) ResultsCacheService {
	if c == nil {
		logger.Get().Info("Results cache disabled")
		return noopResultsCacheService{}
	}
	return &resultsCacheService{cache: c, ttl: ttl}
}

// Put stores result under key.
func (s *resultsCacheService) Put(ctx context.Context, key string, result *domain.FilterResult) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return domain.NewInternalError("failed to marshal result for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set filter result for key %s", key), err)
	}
	logger.Get().Debug("Cached filter result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves the result stored under key.
func (s *resultsCacheService) Get(ctx context.Context, key string) (*domain.FilterResult, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotFound
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get filter result for key %s", key), err)
	}
	if data == "" {
		return nil, ErrResultNotFound
	}

	var result domain.FilterResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal filter result for key %s", key), err)
	}
	return &result, nil
}

// InvalidateAll drops every cached filter result.
func (s *resultsCacheService) InvalidateAll(ctx context.Context) error {
	if err := s.cache.DeleteByPrefix(ctx, cache.ResultsPrefix()); err != nil {
		return domain.NewInternalError("failed to invalidate filter results", err)
	}
	return nil
}

type noopResultsCacheService struct{}

func (noopResultsCacheService) Put(context.Context, string, *domain.FilterResult) error { return nil }

func (noopResultsCacheService) Get(context.Context, string) (*domain.FilterResult, error) {
	return nil, ErrResultNotFound
}

func (noopResultsCacheService) InvalidateAll(context.Context) error { return nil }
