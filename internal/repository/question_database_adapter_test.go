package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance backed by sqlmock.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var questionColumns = []string{"id", "ordinal", "question", "answers", "created_at", "updated_at"}

func TestGetByPosition(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(questionColumns).AddRow(
		"01JAQZ6V0000000000000Q0003", 3, "Welk onderwerp interesseert je het meest?",
		`[{"text":"Machine Learning","topic":"MLAI"},{"text":"Generatieve AI","topic":"GENAI"}]`,
		now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM quiz_questions WHERE ordinal = \?`).
		WithArgs(3).
		WillReturnRows(rows)

	q, err := repo.GetByPosition(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 3, q.Position)
	assert.Equal(t, "Welk onderwerp interesseert je het meest?", q.Text)
	require.Len(t, q.Answers, 2)
	topic, ok := q.Answers[1].Topic()
	assert.True(t, ok)
	assert.Equal(t, "GENAI", topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPosition_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT (.+) FROM quiz_questions WHERE ordinal = \?`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	q, err := repo.GetByPosition(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, q)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPosition_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT (.+) FROM quiz_questions`).
		WithArgs(0).
		WillReturnError(errors.New("db down"))

	q, err := repo.GetByPosition(context.Background(), 0)
	assert.Error(t, err)
	assert.Nil(t, q)
	assert.Contains(t, err.Error(), "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quiz_questions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
