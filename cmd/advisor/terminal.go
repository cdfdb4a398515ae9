package main

import (
	"fmt"
	"io"
	"strings"

	"learnpath/internal/quizflow"
	"learnpath/internal/render"
	"learnpath/internal/resultsfilter"
)

// termView prints quiz prompts and remembers where the quiz navigated to.
type termView struct {
	out    io.Writer
	prompt quizflow.Prompt
	target string
}

func newTermView(out io.Writer) *termView {
	return &termView{out: out}
}

func (v *termView) ShowQuestion(p quizflow.Prompt) {
	v.prompt = p
	fmt.Fprintf(v.out, "\nQuestion %d: %s\n", p.Index+1, p.Question)
	for _, c := range p.Controls {
		fmt.Fprintf(v.out, "  %s) %s\n", c.Label, c.Answer.Text())
	}
}

func (v *termView) Navigate(target string) { v.target = target }

// choice maps a typed label ("b", " B ") onto a control index.
func (v *termView) choice(input string) (int, bool) {
	input = strings.TrimSpace(input)
	for i, c := range v.prompt.Controls {
		if c.Label != "" && strings.EqualFold(c.Label, input) {
			return i, true
		}
	}
	return 0, false
}

// termPage is a MemoryPage that also prints the banner and grid.
type termPage struct {
	*resultsfilter.MemoryPage
	out io.Writer
}

func newTermPage(out io.Writer, score, topic, time string, topics ...string) *termPage {
	return &termPage{MemoryPage: resultsfilter.NewMemoryPage(score, topic, time, topics...), out: out}
}

func (p *termPage) ShowAlert(message string) {
	p.MemoryPage.ShowAlert(message)
	fmt.Fprintf(p.out, "\n>> %s\n", message)
}

func (p *termPage) RenderGrid(cards []render.Card) {
	p.MemoryPage.RenderGrid(cards)
	if len(cards) == 0 {
		fmt.Fprintln(p.out, "\n(no e-learnings)")
		return
	}
	for i, c := range cards {
		fmt.Fprintf(p.out, "\n[%d] %s  %s\n", i+1, c.Title, c.Stars)
		hours := ""
		if c.Time != "" {
			hours = c.Time + "h"
		}
		fmt.Fprintf(p.out, "    %s\n", strings.Join(nonEmpty(c.Topic, c.Type, hours, c.Language, c.Provider), " | "))
		if c.Description != "" {
			fmt.Fprintf(p.out, "    %s\n", c.Description)
		}
		if c.Link != "" {
			fmt.Fprintf(p.out, "    %s\n", c.Link)
		}
	}
}

// checkOnly checks exactly the given topics.
func (p *termPage) checkOnly(topics []string) {
	want := make(map[string]bool, len(topics))
	for _, t := range topics {
		want[strings.ToUpper(t)] = true
	}
	for _, t := range p.Topics() {
		p.SetChecked(t, want[strings.ToUpper(t)])
	}
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
