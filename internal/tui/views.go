package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/tui/viewmodel"
)

// Dashboard header text.
const (
	Title    = "Fraud Detection Dashboard"
	Subtitle = "Monitor digital payments and identify suspicious activity with AI-powered analysis."
)

const horizontalMargin = 2

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The dialog is modal and takes the whole screen.
	if m.alert.Visible() {
		return lipgloss.JoinVertical(lipgloss.Left, m.alert.View(), m.renderFooter())
	}

	sections := []string{
		m.renderHeader(),
		m.searchBar.View(),
	}
	if banner := m.renderError(); banner != "" {
		sections = append(sections, "", banner)
	}
	sections = append(sections,
		"",
		m.table.Render(m.result.Transactions, m.status == viewmodel.StatusLoading),
		"",
		m.renderFooter(),
	)

	return lipgloss.NewStyle().
		Margin(1, horizontalMargin).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Foreground(m.theme.Primary).Render(Title),
		m.theme.Subtitle.Render(viewmodel.Truncate(Subtitle, m.table.Width())),
		"",
	)
}

// renderError renders the inline failure banner above the table.
func (m Model) renderError() string {
	if m.status != viewmodel.StatusFailed || m.errMessage == "" {
		return ""
	}
	return m.theme.ErrorBanner.Render(
		m.theme.Bold.Foreground(m.theme.Error).Render("Error:") + " " + m.errMessage,
	)
}

func (m Model) renderFooter() string {
	return m.help.ShortHelpView(m.helpKeys())
}
