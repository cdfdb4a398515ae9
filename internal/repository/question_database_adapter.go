package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnpath/internal/domain"
	"learnpath/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetByPosition implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByPosition(ctx context.Context, position int) (*domain.Question, error) {
	var m models.QuizQuestion
	query := a.db.Rebind(`SELECT
		id "id",
		ordinal "ordinal",
		question "question",
		answers "answers",
		created_at "created_at",
		updated_at "updated_at"
	FROM quiz_questions
	WHERE ordinal = ?`)

	if err := a.db.GetContext(ctx, &m, query, position); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question at position %d: %w", position, err)
	}
	return toDomainQuestion(&m), nil
}

// Count implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Count(ctx context.Context) (int, error) {
	var n int
	if err := a.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM quiz_questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func toDomainQuestion(m *models.QuizQuestion) *domain.Question {
	return &domain.Question{
		ID:        m.ID,
		Position:  m.Ordinal,
		Text:      m.Question,
		Answers:   []domain.Answer(m.Answers),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
