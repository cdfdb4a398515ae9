package resultsfilter

import (
	"sync"

	"learnpath/internal/render"
)

// Page is the results screen the filter reads from and renders into.
type Page interface {
	// Holders returns the raw score, topic and time data attributes.
	Holders() (score, topic, time string)
	SetTopicHolder(topic string)
	SetTimeHolder(time string)
	SetTimeDisplay(value string)

	// CheckedTopics returns the values of checked topic checkboxes in
	// document order.
	CheckedTopics() []string
	SetTypeOptions(options []string)

	ShowAlert(message string)
	HideAlert()

	// RenderGrid replaces the grid contents with cards.
	RenderGrid(cards []render.Card)
}

// MemoryPage is an in-process Page. Topic checkboxes keep insertion order.
type MemoryPage struct {
	mu sync.Mutex

	Score, Topic, Time string
	TimeDisplay        string
	TypeOptions        []string
	Alert              string
	AlertVisible       bool
	Grid               []render.Card
	GridRenders        int

	topics  []string
	checked map[string]bool
}

// NewMemoryPage creates a page with the given holders and topic checkboxes.
func NewMemoryPage(score, topic, time string, topics ...string) *MemoryPage {
	return &MemoryPage{Score: score, Topic: topic, Time: time, topics: topics, checked: make(map[string]bool)}
}

// SetChecked toggles a checkbox, as a user click would.
func (p *MemoryPage) SetChecked(topic string, checked bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checked[topic] = checked
}

// Topics returns the checkbox values in document order.
func (p *MemoryPage) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}

func (p *MemoryPage) Holders() (string, string, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Score, p.Topic, p.Time
}

func (p *MemoryPage) SetTopicHolder(topic string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Topic = topic
}

func (p *MemoryPage) SetTimeHolder(time string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Time = time
}

func (p *MemoryPage) SetTimeDisplay(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.TimeDisplay = value
}

func (p *MemoryPage) CheckedTopics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, t := range p.topics {
		if p.checked[t] {
			out = append(out, t)
		}
	}
	return out
}

func (p *MemoryPage) SetTypeOptions(options []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.TypeOptions = append([]string(nil), options...)
}

func (p *MemoryPage) ShowAlert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Alert, p.AlertVisible = message, true
}

func (p *MemoryPage) HideAlert() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.AlertVisible = false
}

func (p *MemoryPage) RenderGrid(cards []render.Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Grid = append([]render.Card(nil), cards...)
	p.GridRenders++
}

// Snapshot returns the grid and banner state.
func (p *MemoryPage) Snapshot() (grid []render.Card, alert string, alertVisible bool, renders int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]render.Card(nil), p.Grid...), p.Alert, p.AlertVisible, p.GridRenders
}
