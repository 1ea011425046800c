package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/tui/themes"
)

// Alert dialog text.
const (
	AlertTitle       = "Suspicious Activity Detected"
	AlertBody        = "Please review the highlighted transaction(s) for potential fraudulent activity."
	AcknowledgeLabel = "[ Acknowledge ]"
)

const alertWidth = 48

var acknowledgeKey = key.NewBinding(
	key.WithKeys("enter", " ", "a"),
	key.WithHelp("enter/a", "acknowledge"),
)

// AlertModel is the modal shown when a result contains suspicious activity.
// It stays open until acknowledged.
type AlertModel struct {
	theme   themes.Theme
	width   int
	height  int
	visible bool
}

// NewAlertModel creates a hidden alert.
func NewAlertModel(theme themes.Theme) AlertModel {
	return AlertModel{theme: theme}
}

// Show makes the alert visible.
func (m AlertModel) Show() AlertModel {
	m.visible = true
	return m
}

// Hide closes the alert.
func (m AlertModel) Hide() AlertModel {
	m.visible = false
	return m
}

// Visible reports whether the alert is open.
func (m AlertModel) Visible() bool {
	return m.visible
}

// Resize sets the area the dialog is centered in.
func (m AlertModel) Resize(width, height int) AlertModel {
	m.width = width
	m.height = height
	return m
}

// Update emits AlertDismissedMsg on an acknowledge key. Hidden alerts ignore input.
func (m AlertModel) Update(msg tea.Msg) (AlertModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, acknowledgeKey) {
		return m, func() tea.Msg { return AlertDismissedMsg{} }
	}
	return m, nil
}

// View renders the dialog, or nothing when hidden.
func (m AlertModel) View() string {
	if !m.visible {
		return ""
	}

	body := lipgloss.NewStyle().Width(alertWidth).Render(AlertBody)
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.ModalTitle.Render("⚠ "+AlertTitle),
		"",
		m.theme.Normal.Render(body),
		"",
		m.theme.Button.Render(AcknowledgeLabel),
	)
	box := m.theme.Modal.Render(content)

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// HelpKeys returns the bindings active while the alert is open.
func (m AlertModel) HelpKeys() []key.Binding {
	return []key.Binding{acknowledgeKey}
}
