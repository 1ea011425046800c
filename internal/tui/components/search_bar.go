package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/tui/themes"
)

// SearchPlaceholder is shown in the empty input.
const SearchPlaceholder = "Enter transaction ID, amount, or query (e.g., 'amount > 50000')"

const (
	searchButtonLabel  = "[ Search ]"
	loadingButtonLabel = "Searching"
	minInputWidth      = 20
)

var submitKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "search"),
)

// SearchBarModel is the query input and its submit button. It holds the text
// being edited; whether a search runs is decided by the parent.
type SearchBarModel struct {
	theme   themes.Theme
	input   textinput.Model
	spinner spinner.Model
	loading bool
}

// NewSearchBarModel creates a focused search bar.
func NewSearchBarModel(theme themes.Theme) SearchBarModel {
	input := textinput.New()
	input.Placeholder = SearchPlaceholder
	input.Prompt = "> "
	input.CharLimit = 256
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	input.PlaceholderStyle = theme.Muted
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return SearchBarModel{
		theme:   theme,
		input:   input,
		spinner: spin,
	}
}

// Init starts the cursor blink.
func (m SearchBarModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Keys are ignored while a search is loading.
func (m SearchBarModel) Update(msg tea.Msg) (SearchBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		if key.Matches(msg, submitKey) {
			query := m.input.Value()
			return m, func() tea.Msg {
				return SearchRequestedMsg{Query: query}
			}
		}
	}

	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetLoading switches the bar between editable and disabled. Entering the
// loading state starts the spinner.
func (m SearchBarModel) SetLoading(loading bool) (SearchBarModel, tea.Cmd) {
	if m.loading == loading {
		return m, nil
	}
	m.loading = loading

	if loading {
		m.input.Blur()
		return m, m.spinner.Tick
	}
	return m, m.input.Focus()
}

// Loading reports whether the bar is disabled.
func (m SearchBarModel) Loading() bool {
	return m.loading
}

// HelpKeys returns the bindings the bar reacts to. None while loading.
func (m SearchBarModel) HelpKeys() []key.Binding {
	if m.loading {
		return nil
	}
	return []key.Binding{submitKey}
}

// Value returns the current query text.
func (m SearchBarModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text.
func (m SearchBarModel) SetValue(value string) SearchBarModel {
	m.input.SetValue(value)
	return m
}

// Resize sets the total width available to the bar.
func (m SearchBarModel) Resize(width int) SearchBarModel {
	// Border and padding take 4 columns, the prompt 2 and the cursor 1.
	// The button carries 2 columns of padding and is preceded by a gap.
	inputWidth := width - 4 - 2 - 1 - (lipgloss.Width(searchButtonLabel) + 2) - 1
	m.input.Width = max(inputWidth, minInputWidth)
	return m
}

// View renders the input and the button.
func (m SearchBarModel) View() string {
	inputStyle := m.theme.Input
	if m.loading {
		inputStyle = m.theme.InputDisabled
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		inputStyle.Render(m.input.View()),
		" ",
		m.renderButton(),
	)
}

func (m SearchBarModel) renderButton() string {
	if m.loading {
		return m.theme.ButtonDisabled.Render(m.spinner.View() + " " + loadingButtonLabel)
	}
	return m.theme.Button.Render(searchButtonLabel)
}
