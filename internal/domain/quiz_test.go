package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantKind  AnswerKind
		wantScore float64
		wantTopic string
		wantErr   bool
	}{
		{name: "score answer", payload: `{"text":"Dagelijks","score":10}`, wantKind: ScoreAnswer, wantScore: 10},
		{name: "fractional score", payload: `{"text":"Soms","score":1.5}`, wantKind: ScoreAnswer, wantScore: 1.5},
		{name: "zero score is still score-typed", payload: `{"text":"Nooit","score":0}`, wantKind: ScoreAnswer},
		{name: "topic answer", payload: `{"text":"Generatieve AI","topic":"GENAI"}`, wantKind: TopicAnswer, wantTopic: "GENAI"},
		{name: "both fields", payload: `{"text":"x","score":1,"topic":"MLAI"}`, wantErr: true},
		{name: "neither field", payload: `{"text":"x"}`, wantErr: true},
		{name: "wrong score type", payload: `{"text":"x","score":"high"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Answer
			err := json.Unmarshal([]byte(tt.payload), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, a.Kind())

			score, isScore := a.Score()
			topic, isTopic := a.Topic()
			assert.Equal(t, tt.wantKind == ScoreAnswer, isScore)
			assert.Equal(t, tt.wantKind == TopicAnswer, isTopic)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantTopic, topic)
		})
	}
}

func TestAnswer_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewScoreAnswer("Af en toe", 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Af en toe","score":3}`, string(b))

	b, err = json.Marshal(NewTopicAnswer("Data analysis and cleaning", "DACL"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Data analysis and cleaning","topic":"DACL"}`, string(b))

	_, err = json.Marshal(Answer{})
	assert.Error(t, err)
}

func TestQuestion_Validate(t *testing.T) {
	q := &Question{Text: "Welke stelling past het beste bij jou?", Answers: []Answer{NewScoreAnswer("a", 1)}}
	assert.NoError(t, q.Validate())

	err := (&Question{Answers: []Answer{NewScoreAnswer("a", 1)}}).Validate()
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeInvalidInput, domainErr.Code)

	assert.Error(t, (&Question{Text: "q"}).Validate())
	assert.Error(t, (&Question{Text: "q", Answers: []Answer{{}}}).Validate())
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{NewMissingFieldError("score"), NewOutOfRangeError("time", -1, 0, 1000)}
	assert.Equal(t, "validation failed: score: field is required; time: must be between 0 and 1000", errs.Error())
}
