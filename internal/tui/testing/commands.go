package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FindMsg runs cmd, expanding batches, and returns the first message of type T.
// Commands whose messages are rejected by skip are not run; pass nil to run all.
func FindMsg[T tea.Msg](cmd tea.Cmd, skip func(tea.Cmd) bool) (T, bool) {
	var zero T
	for _, msg := range CollectMsgs(cmd, skip) {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// CollectMsgs runs cmd and every command nested in a tea.BatchMsg, returning
// the leaf messages in order.
func CollectMsgs(cmd tea.Cmd, skip func(tea.Cmd) bool) []tea.Msg {
	if cmd == nil || (skip != nil && skip(cmd)) {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, inner := range batch {
		msgs = append(msgs, CollectMsgs(inner, skip)...)
	}
	return msgs
}
