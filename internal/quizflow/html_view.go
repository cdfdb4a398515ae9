package quizflow

import (
	"io"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/logger"
	"learnpath/internal/render"

	"go.uber.org/zap"
)

// HTMLView writes each prompt as the quiz-container fragment and records the
// navigation target.
type HTMLView struct {
	w        io.Writer
	renderer *render.Renderer
	target   string
}

func NewHTMLView(w io.Writer, renderer *render.Renderer) *HTMLView {
	return &HTMLView{w: w, renderer: renderer}
}

func (v *HTMLView) ShowQuestion(p Prompt) {
	if err := v.renderer.Question(v.w, QuestionView(p)); err != nil {
		logger.Get().Warn("Failed to render question", zap.Int("index", p.Index), zap.Error(err))
	}
}

func (v *HTMLView) Navigate(target string) { v.target = target }

// Target returns the last navigation target, or "".
func (v *HTMLView) Target() string { return v.target }

// QuestionView converts a prompt into the fragment's view model.
func QuestionView(p Prompt) render.QuestionView {
	answers := make([]domain.Answer, len(p.Controls))
	for i, c := range p.Controls {
		answers[i] = c.Answer
	}
	return render.NewQuestionView(dto.QuestionResponse{Question: p.Question, Answers: answers})
}
