package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"learnpath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffTitel;Niveau;Onderwerp;Type;Tijdsinvestering;Taal;Organisatie;Beschrijving;Link\n" +
	"Intro to ML;1;MLAI;E-Learning;2,5;NL;Academy;\"Basics; with a semicolon\";https://example.org/ml\n" +
	"\n" +
	"GenAI Workshop;3;GENAI;Workshop;4;EN;Lab;Hands-on;https://example.org/genai\n"

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Intro to ML", first.Titel)
	assert.Equal(t, 1, first.Niveau)
	assert.Equal(t, "MLAI", first.Onderwerp)
	assert.Equal(t, "E-Learning", first.Type)
	assert.Equal(t, 2.5, first.Tijdsinvestering)
	assert.Equal(t, "Basics; with a semicolon", first.Beschrijving)
	assert.Equal(t, domain.StatusActive, first.Status)
	assert.Empty(t, first.ID)

	assert.Equal(t, "GenAI Workshop", items[1].Titel)
	assert.Equal(t, 4.0, items[1].Tijdsinvestering)
}

func TestParse_MissingOptionalColumns(t *testing.T) {
	items, err := Parse(strings.NewReader("Titel;Beschrijving\nA;first\nB\n"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Niveau)
	assert.Equal(t, 0.0, items[0].Tijdsinvestering)
	assert.Equal(t, "first", items[0].Beschrijving)
	assert.Equal(t, "", items[1].Beschrijving)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "Titel"},
		{"no title column", "Niveau;Type\n1;Guide\n", "Titel"},
		{"bad level", "Titel;Niveau\nA;high\n", "line 2: Niveau"},
		{"bad hours", "Titel;Tijdsinvestering\nA;\nB;lang\n", "line 3: Tijdsinvestering"},
		{"negative level", "Titel;Niveau\nA;-1\n", "line 2"},
		{"missing title", "Titel;Niveau\n;2\n", "titel is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseHours(t *testing.T) {
	for in, want := range map[string]float64{"": 0, "2": 2, "2.5": 2.5, "0,75": 0.75} {
		got, err := ParseHours(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"-1", "abc", "NaN", "nan", "Inf", "+Inf", "-Inf", "1e400"} {
		_, err := ParseHours(in)
		assert.Error(t, err, in)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Elearnings.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	items, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
