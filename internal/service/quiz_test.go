package service

import (
	"context"
	"errors"
	"testing"

	"learnpath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		svc := NewQuizService(repo)
		repo.On("GetByPosition", mock.Anything, 1).Return(&domain.Question{
			Position: 1,
			Text:     "Hoe vaak gebruik je AI?",
			Answers:  []domain.Answer{domain.NewScoreAnswer("Dagelijks", 10)},
		}, nil)

		resp, err := svc.GetQuestion(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Hoe vaak gebruik je AI?", resp.Question)
		require.Len(t, resp.Answers, 1)
		score, ok := resp.Answers[0].Score()
		assert.True(t, ok)
		assert.Equal(t, 10.0, score)
		repo.AssertExpectations(t)
	})

	t.Run("PastTheEnd", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		svc := NewQuizService(repo)
		repo.On("GetByPosition", mock.Anything, 4).Return(nil, nil)

		resp, err := svc.GetQuestion(ctx, 4)
		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
		assert.Equal(t, "Question not found", domainErr.Message)
	})

	t.Run("Negative index skips the repository", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		svc := NewQuizService(repo)

		_, err := svc.GetQuestion(ctx, -1)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
		repo.AssertNotCalled(t, "GetByPosition", mock.Anything, mock.Anything)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		svc := NewQuizService(repo)
		repo.On("GetByPosition", mock.Anything, 0).Return(nil, errors.New("db down"))

		_, err := svc.GetQuestion(ctx, 0)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})

	t.Run("NoAnswersIsEmptyList", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		svc := NewQuizService(repo)
		repo.On("GetByPosition", mock.Anything, 2).Return(&domain.Question{Position: 2, Text: "Leeg"}, nil)

		resp, err := svc.GetQuestion(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, resp.Answers)
		assert.Empty(t, resp.Answers)
	})
}

func TestCountQuestions(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuizService(repo)
	repo.On("Count", mock.Anything).Return(4, nil)

	n, err := svc.CountQuestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
