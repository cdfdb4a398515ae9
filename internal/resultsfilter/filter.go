// Package resultsfilter drives the recommendations grid: it derives a filter
// state from page controls, fetches matching items and renders at most
// MaxCards of them.
package resultsfilter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"learnpath/internal/logger"
	"learnpath/internal/render"
	"learnpath/internal/util"

	"go.uber.org/zap"
)

// MaxCards is the grid size.
const MaxCards = 6

// Categories fills the type selector. The list is fixed.
var Categories = []string{"all", "Workshop", "E-Learning", "Guide"}

// FilterState is what a fetch is made from.
type FilterState struct {
	Score  float64
	Topics []string
	Time   float64
}

// EventKind identifies a filter control interaction.
type EventKind int

const (
	CheckboxChanged EventKind = iota + 1
	SliderDragged
	SliderReleased
	TypeSelected
)

// Event is one control interaction. Value carries the slider position or the
// selected type.
type Event struct {
	Kind  EventKind
	Value string
}

// Stars renders a Niveau as a row of stars, or "No rating" when level <= 0.
func Stars(level int) string {
	return render.Stars(level)
}

// Filter keeps the page's grid in sync with its filter controls.
type Filter struct {
	page    Page
	fetcher Fetcher

	mu       sync.Mutex
	state    FilterState
	issued   uint64
	rendered uint64
}

// New creates a Filter for page.
func New(page Page, fetcher Fetcher) *Filter {
	return &Filter{page: page, fetcher: fetcher}
}

// Initialize reads the holders, fills the type selector and renders the
// first grid. Unparseable holders fall back to zero.
func (f *Filter) Initialize(ctx context.Context) {
	f.mu.Lock()
	score, topic, timeValue := f.page.Holders()
	f.state = FilterState{
		Score:  parseFloat(score),
		Topics: util.SplitList(topic),
		Time:   parseFloat(timeValue),
	}
	f.page.SetTypeOptions(Categories)
	state := f.copyState()
	f.mu.Unlock()

	_ = f.FetchAndRender(ctx, state)
}

// OnFilterChange applies one control interaction. Only checkbox changes and
// slider releases fetch; fetch failures are logged, not returned.
func (f *Filter) OnFilterChange(ctx context.Context, ev Event) error {
	f.mu.Lock()
	switch ev.Kind {
	case CheckboxChanged:
		f.state.Topics = f.page.CheckedTopics()
		f.page.SetTopicHolder(strings.Join(f.state.Topics, ","))

	case SliderDragged:
		f.mu.Unlock()
		return nil

	case SliderReleased:
		t, err := strconv.ParseFloat(strings.TrimSpace(ev.Value), 64)
		if err != nil || t < 0 {
			f.mu.Unlock()
			return fmt.Errorf("invalid slider value %q", ev.Value)
		}
		f.state.Time = t
		f.page.SetTimeDisplay(ev.Value)
		f.page.SetTimeHolder(ev.Value)

	case TypeSelected:
		f.mu.Unlock()
		// Not part of the query yet.
		logger.Get().Info("Selected type", zap.String("type", ev.Value))
		return nil

	default:
		f.mu.Unlock()
		return fmt.Errorf("unknown filter event %d", ev.Kind)
	}
	state := f.copyState()
	f.mu.Unlock()

	_ = f.FetchAndRender(ctx, state)
	return nil
}

// FetchAndRender fetches data for state and renders it. On failure the grid
// and banner are left untouched. A response is dropped when a newer one has
// already been rendered.
func (f *Filter) FetchAndRender(ctx context.Context, state FilterState) error {
	f.mu.Lock()
	f.issued++
	seq := f.issued
	f.mu.Unlock()

	resp, err := f.fetcher.Fetch(ctx, state)
	if err != nil {
		logger.Get().Error("Error fetching data", zap.Uint64("seq", seq), zap.Error(err))
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq < f.rendered {
		logger.Get().Debug("Dropping stale response", zap.Uint64("seq", seq), zap.Uint64("rendered", f.rendered))
		return nil
	}
	f.rendered = seq

	if resp.Status != "" {
		f.page.ShowAlert(resp.Status)
	} else {
		f.page.HideAlert()
	}
	f.page.RenderGrid(render.NewCards(resp.Data, MaxCards))
	return nil
}

// State returns a copy of the current filter state.
func (f *Filter) State() FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyState()
}

func (f *Filter) copyState() FilterState {
	s := f.state
	s.Topics = append([]string(nil), f.state.Topics...)
	return s
}

func parseFloat(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}
