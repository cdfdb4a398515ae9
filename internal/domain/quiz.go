package domain

import (
	"encoding/json"
	"time"
)

// AnswerKind tags which variant an Answer holds.
type AnswerKind int

const (
	ScoreAnswer AnswerKind = iota + 1
	TopicAnswer
)

func (k AnswerKind) String() string {
	switch k {
	case ScoreAnswer:
		return "score"
	case TopicAnswer:
		return "topic"
	default:
		return "unknown"
	}
}

// Answer is either score-typed (adds to the running total) or topic-typed
// (replaces the selected topic). The zero value is invalid.
type Answer struct {
	text  string
	kind  AnswerKind
	score float64
	topic string
}

func NewScoreAnswer(text string, score float64) Answer {
	return Answer{text: text, kind: ScoreAnswer, score: score}
}

func NewTopicAnswer(text, topic string) Answer {
	return Answer{text: text, kind: TopicAnswer, topic: topic}
}

func (a Answer) Text() string     { return a.text }
func (a Answer) Kind() AnswerKind { return a.kind }

// Score returns the score delta and whether the answer is score-typed.
func (a Answer) Score() (float64, bool) {
	return a.score, a.kind == ScoreAnswer
}

// Topic returns the topic value and whether the answer is topic-typed.
func (a Answer) Topic() (string, bool) {
	return a.topic, a.kind == TopicAnswer
}

type answerWire struct {
	Text  string   `json:"text"`
	Score *float64 `json:"score,omitempty"`
	Topic *string  `json:"topic,omitempty"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	w := answerWire{Text: a.text}
	switch a.kind {
	case ScoreAnswer:
		score := a.score
		w.Score = &score
	case TopicAnswer:
		topic := a.topic
		w.Topic = &topic
	default:
		return nil, NewInvalidAnswerError("answer has neither score nor topic")
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts exactly one of "score" and "topic".
func (a *Answer) UnmarshalJSON(data []byte) error {
	var w answerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Score != nil && w.Topic != nil:
		return NewInvalidAnswerError("answer has both score and topic")
	case w.Score != nil:
		*a = NewScoreAnswer(w.Text, *w.Score)
	case w.Topic != nil:
		*a = NewTopicAnswer(w.Text, *w.Topic)
	default:
		return NewInvalidAnswerError("answer has neither score nor topic")
	}
	return nil
}

// Question is one entry of the quiz bank, addressed by its zero-based Position.
type Question struct {
	ID        string
	Position  int
	Text      string
	Answers   []Answer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants a displayable question must hold.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Answers) == 0 {
		return NewInvalidInputError("at least one answer is required")
	}
	for _, a := range q.Answers {
		if a.Kind() != ScoreAnswer && a.Kind() != TopicAnswer {
			return NewInvalidAnswerError("answer has neither score nor topic")
		}
	}
	return nil
}
