// Package testing provides test utilities for TUI components.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal and keeps the
// most recent view.
type TestRenderer struct {
	output string
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render renders model and records its view.
func (r *TestRenderer) Render(model tea.Model) string {
	r.output = model.View()
	return r.output
}

// Update sends msg to model and renders the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := model.Update(msg)
	r.Render(next)
	return next, cmd
}

// SendAll feeds each message in turn and returns the final model.
func (r *TestRenderer) SendAll(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// Plain returns the last view with ANSI styling removed.
func (r *TestRenderer) Plain() string {
	return StripANSI(r.output)
}
