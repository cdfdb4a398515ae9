package service

import (
	"context"
	"errors"
	"time"

	"learnpath/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetByPosition(ctx context.Context, position int) (*domain.Question, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- MockElearningRepository ---
type MockElearningRepository struct {
	mock.Mock
}

func (m *MockElearningRepository) Find(ctx context.Context, q domain.ElearningQuery) ([]*domain.Elearning, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Elearning), args.Error(1)
}

func (m *MockElearningRepository) ListActive(ctx context.Context) ([]*domain.Elearning, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Elearning), args.Error(1)
}

func (m *MockElearningRepository) ListAll(ctx context.Context) ([]*domain.Elearning, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Elearning), args.Error(1)
}

func (m *MockElearningRepository) ReplaceAll(ctx context.Context, items []*domain.Elearning) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockElearningRepository) Save(ctx context.Context, item *domain.Elearning) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockElearningRepository) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc            func(ctx context.Context, key string) (string, error)
	SetFunc            func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc         func(ctx context.Context, key string) error
	DeleteByPrefixFunc func(ctx context.Context, prefix string) error
	PingFunc           func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	if m.DeleteByPrefixFunc != nil {
		return m.DeleteByPrefixFunc(ctx, prefix)
	}
	return errors.New("DeleteByPrefixFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}
