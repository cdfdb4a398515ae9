package service

import (
	"context"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/logger"

	"go.uber.org/zap"
)

// QuizService serves the question bank one position at a time.
type QuizService interface {
	GetQuestion(ctx context.Context, index int) (*dto.QuestionResponse, error)
	CountQuestions(ctx context.Context) (int, error)
}

type quizService struct {
	repo domain.QuestionRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuestionRepository) QuizService {
	return &quizService{repo: repo}
}

// GetQuestion implements QuizService. A negative or unknown index is a
// QUESTION_NOT_FOUND error, which is how clients learn the quiz is over.
func (s *quizService) GetQuestion(ctx context.Context, index int) (*dto.QuestionResponse, error) {
	if index < 0 {
		return nil, domain.NewQuestionNotFoundError(index)
	}

	q, err := s.repo.GetByPosition(ctx, index)
	if err != nil {
		logger.Get().Error("Failed to load question", zap.Int("index", index), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(index)
	}

	answers := q.Answers
	if answers == nil {
		answers = []domain.Answer{}
	}
	return &dto.QuestionResponse{Question: q.Text, Answers: answers}, nil
}

// CountQuestions implements QuizService
func (s *quizService) CountQuestions(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, domain.NewInternalError("Failed to count questions", err)
	}
	return n, nil
}
