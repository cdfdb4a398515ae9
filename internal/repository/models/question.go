package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"learnpath/internal/domain"
)

// AnswerList stores a question's answers as a JSON array in a text column.
type AnswerList []domain.Answer

// Value implements the driver.Valuer interface
func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]domain.Answer(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("AnswerList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 {
		*l = AnswerList{}
		return nil
	}

	var answers []domain.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return fmt.Errorf("AnswerList Scan: %w", err)
	}
	*l = answers
	return nil
}

// QuizQuestion is the quiz_questions row.
type QuizQuestion struct {
	ID        string     `db:"id"`
	Ordinal   int        `db:"ordinal"`
	Question  string     `db:"question"`
	Answers   AnswerList `db:"answers"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
