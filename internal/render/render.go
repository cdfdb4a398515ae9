// Package render produces the HTML pages and fragments of the quiz and
// results screens.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	noRating = "No rating"
	star     = "★"

	// answerLabels label answer buttons; answers past the last letter get
	// an empty label.
	answerLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Stars renders a Niveau as a row of stars, or "No rating" when level <= 0.
func Stars(level int) string {
	if level <= 0 {
		return noRating
	}
	return strings.Repeat(star, level)
}

// AnswerLabel returns the letter for the answer at index, or "" past Z.
func AnswerLabel(index int) string {
	if index < 0 || index >= len(answerLabels) {
		return ""
	}
	return answerLabels[index : index+1]
}

// Card is the view model of one result card.
type Card struct {
	Title       string
	Stars       string
	Topic       string
	Type        string
	Time        string
	Language    string
	Provider    string
	Description string
	Link        string
}

// NewCard builds the card for one /data item.
func NewCard(item dto.ResultItem) Card {
	return Card{
		Title:       item.Titel,
		Stars:       Stars(item.Niveau),
		Topic:       item.Onderwerp,
		Type:        item.Type,
		Time:        strconv.FormatFloat(item.Tijdsinvestering, 'f', -1, 64),
		Language:    item.Taal,
		Provider:    item.Organisatie,
		Description: item.Beschrijving,
		Link:        item.Link,
	}
}

// NewCards builds cards for at most limit items, in order. limit <= 0 means
// no limit.
func NewCards(items []dto.ResultItem, limit int) []Card {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = NewCard(item)
	}
	return cards
}

// AnswerView is one labelled answer button.
type AnswerView struct {
	Label string
	Text  string
	Kind  string
	Value string
}

// QuestionView is the view model of the question fragment.
type QuestionView struct {
	Question string
	Answers  []AnswerView
}

// NewQuestionView labels the answers of q in order.
func NewQuestionView(q dto.QuestionResponse) QuestionView {
	v := QuestionView{Question: q.Question, Answers: make([]AnswerView, len(q.Answers))}
	for i, a := range q.Answers {
		av := AnswerView{Label: AnswerLabel(i), Text: a.Text(), Kind: a.Kind().String()}
		switch a.Kind() {
		case domain.ScoreAnswer:
			score, _ := a.Score()
			av.Value = strconv.FormatFloat(score, 'f', -1, 64)
		case domain.TopicAnswer:
			av.Value, _ = a.Topic()
		}
		v.Answers[i] = av
	}
	return v
}

// QuizPage is the data of the quiz page.
type QuizPage struct {
	FirstQuestionURL string
}

// TopicOption is one topic checkbox.
type TopicOption struct {
	Value   string
	Checked bool
}

// ResultsPage is the data of the results page.
type ResultsPage struct {
	Score      float64
	Topic      string
	Time       string
	MaxTime    int
	Categories []string
	Topics     []TopicOption
	Status     string
	Cards      []Card
}

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) QuizPage(w io.Writer, p QuizPage) error {
	return r.tmpl.ExecuteTemplate(w, "quiz", p)
}

func (r *Renderer) ResultsPage(w io.Writer, p ResultsPage) error {
	return r.tmpl.ExecuteTemplate(w, "results", p)
}

// Cards writes the grid fragment for cards.
func (r *Renderer) Cards(w io.Writer, cards []Card) error {
	return r.tmpl.ExecuteTemplate(w, "cards", cards)
}

// Question writes the quiz-container fragment for q.
func (r *Renderer) Question(w io.Writer, q QuestionView) error {
	return r.tmpl.ExecuteTemplate(w, "question", q)
}
