// Package quizflow runs the recommendation quiz: one question at a time,
// accumulating a score and a topic, ending with a navigation to the results
// page.
package quizflow

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"learnpath/internal/domain"
	"learnpath/internal/dto"
	"learnpath/internal/logger"
	"learnpath/internal/render"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultResultsPath is where a finished quiz navigates to.
const DefaultResultsPath = "/elearning"

// State is the phase of a Flow.
type State int

const (
	Loading State = iota
	Displaying
	Submitting
	Terminated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Displaying:
		return "displaying"
	case Submitting:
		return "submitting"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session is the client-side quiz state of one run.
type Session struct {
	ID            string
	CurrentIndex  int
	TotalScore    float64
	SelectedTopic string
}

// Control is one answer button. It keeps the Answer it was built from.
type Control struct {
	Label  string
	Answer domain.Answer
}

// Prompt is what a View shows in the Displaying state.
type Prompt struct {
	Index    int
	Question string
	Controls []Control
}

// View is the page surface the quiz draws on. Flow calls it without holding
// its lock, so a View may read State or Session from a callback.
type View interface {
	ShowQuestion(p Prompt)
	Navigate(target string)
}

// Flow drives one quiz run. Methods are safe for concurrent use, but a run
// is inherently sequential: Choose is only accepted while Displaying.
type Flow struct {
	source      Source
	view        View
	resultsPath string

	mu      sync.Mutex
	state   State
	session Session
	current *dto.QuestionResponse
}

// Option configures a Flow.
type Option func(*Flow)

// WithResultsPath overrides DefaultResultsPath.
func WithResultsPath(path string) Option {
	return func(f *Flow) { f.resultsPath = path }
}

// New creates a Flow in the Loading state for index 0.
func New(source Source, view View, opts ...Option) *Flow {
	f := &Flow{
		source:      source,
		view:        view,
		resultsPath: DefaultResultsPath,
		state:       Loading,
		session:     Session{ID: uuid.NewString()},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start loads the first question.
func (f *Flow) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.state != Loading || f.session.CurrentIndex != 0 || f.current != nil {
		err := fmt.Errorf("quiz %s already started", f.session.ID)
		f.mu.Unlock()
		return err
	}
	notify := f.load(ctx)
	f.mu.Unlock()

	notify()
	return nil
}

// Choose activates the answer control at position i of the displayed
// question and moves on to the next question.
func (f *Flow) Choose(ctx context.Context, i int) error {
	f.mu.Lock()
	if f.state != Displaying {
		err := fmt.Errorf("quiz %s is %s, not accepting answers", f.session.ID, f.state)
		f.mu.Unlock()
		return err
	}
	if i < 0 || i >= len(f.current.Answers) {
		err := fmt.Errorf("answer %d out of range [0,%d)", i, len(f.current.Answers))
		f.mu.Unlock()
		return err
	}

	a := f.current.Answers[i]
	if score, ok := a.Score(); ok {
		f.session.TotalScore += score
	} else if topic, ok := a.Topic(); ok {
		f.session.SelectedTopic = topic
	}

	f.session.CurrentIndex++
	f.current = nil
	f.state = Loading
	notify := f.load(ctx)
	f.mu.Unlock()

	notify()
	return nil
}

// State returns the current phase.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Session returns a copy of the run's state.
func (f *Flow) Session() Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

// load fetches the question at the current index and either displays it or
// submits. Callers hold f.mu and run the returned view update after
// releasing it.
func (f *Flow) load(ctx context.Context) func() {
	index := f.session.CurrentIndex
	q, err := f.source.Question(ctx, index)
	switch {
	case err != nil:
		logger.Get().Debug("Question fetch ended the quiz",
			zap.String("session", f.session.ID), zap.Int("index", index), zap.Error(err))
		return f.submit()
	case q == nil || q.Question == "" || len(q.Answers) == 0:
		logger.Get().Debug("Question without content ended the quiz",
			zap.String("session", f.session.ID), zap.Int("index", index))
		return f.submit()
	}

	f.current = q
	f.state = Displaying
	prompt := buildPrompt(index, q)
	return func() { f.view.ShowQuestion(prompt) }
}

// submit moves to Terminated and returns the single navigation.
func (f *Flow) submit() func() {
	f.state = Submitting
	target := ResultsURL(f.resultsPath, f.session.TotalScore, f.session.SelectedTopic)
	logger.Get().Info("Quiz submitted",
		zap.String("session", f.session.ID),
		zap.Float64("score", f.session.TotalScore),
		zap.String("topic", f.session.SelectedTopic))
	f.state = Terminated
	return func() { f.view.Navigate(target) }
}

func buildPrompt(index int, q *dto.QuestionResponse) Prompt {
	p := Prompt{Index: index, Question: q.Question, Controls: make([]Control, len(q.Answers))}
	for i, a := range q.Answers {
		p.Controls[i] = Control{Label: render.AnswerLabel(i), Answer: a}
	}
	return p
}

// ResultsURL builds the navigation target for a finished quiz.
func ResultsURL(path string, score float64, topic string) string {
	v := url.Values{}
	v.Set("score", strconv.FormatFloat(score, 'f', -1, 64))
	v.Set("topic", topic)
	return path + "?" + v.Encode()
}
