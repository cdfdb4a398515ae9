package models

import (
	"testing"

	"learnpath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerList_Value(t *testing.T) {
	v, err := AnswerList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = AnswerList{domain.NewScoreAnswer("Periodiek", 6), domain.NewTopicAnswer("Generatieve AI", "GENAI")}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Periodiek","score":6},{"text":"Generatieve AI","topic":"GENAI"}]`, v.(string))
}

func TestAnswerList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantLen int
		wantErr bool
	}{
		{name: "nil", value: nil, wantLen: 0},
		{name: "empty bytes", value: []byte{}, wantLen: 0},
		{name: "string", value: `[{"text":"a","score":1},{"text":"b","topic":"MLAI"}]`, wantLen: 2},
		{name: "bytes", value: []byte(`[{"text":"a","score":1}]`), wantLen: 1},
		{name: "answer without variant", value: `[{"text":"a"}]`, wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l AnswerList
			err := l.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, l, tt.wantLen)
		})
	}
}
