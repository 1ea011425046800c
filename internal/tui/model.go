// Package tui implements the full-screen fraud search dashboard.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/fraudwatch/internal/analysis"
	"github.com/Veraticus/fraudwatch/internal/model"
	"github.com/Veraticus/fraudwatch/internal/tui/components"
	"github.com/Veraticus/fraudwatch/internal/tui/themes"
	"github.com/Veraticus/fraudwatch/internal/tui/viewmodel"
)

// Model is the root coordinator. It owns the session state: the current
// query, one search status, the last result or error, and whether the
// suspicious-activity alert is open. The alert is independent of the status.
type Model struct {
	ctx          context.Context
	cancelSearch context.CancelFunc
	analyzer     analysis.Analyzer
	theme        themes.Theme
	help         help.Model
	keymap       KeyMap
	searchBar    components.SearchBarModel
	table        components.ResultsTableModel
	alert        components.AlertModel
	query        string
	errMessage   string
	result       model.AnalysisResult
	status       viewmodel.SearchStatus
	seq          int
	width        int
	height       int
	quitting     bool
}

// NewModel creates a dashboard that answers searches with analyzer. Searches
// run under ctx and are cancelled with it.
func NewModel(ctx context.Context, analyzer analysis.Analyzer, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	h := help.New()
	h.Styles.ShortKey = cfg.Theme.Bold
	h.Styles.ShortDesc = cfg.Theme.Help
	h.Styles.ShortSeparator = cfg.Theme.Help

	m := Model{
		ctx:       ctx,
		analyzer:  analyzer,
		theme:     cfg.Theme,
		help:      h,
		keymap:    DefaultKeyMap(),
		searchBar: components.NewSearchBarModel(cfg.Theme),
		table:     components.NewResultsTableModel(cfg.Theme, cfg.Location),
		alert:     components.NewAlertModel(cfg.Theme),
		result:    model.EmptyResult(),
		status:    viewmodel.StatusIdle,
	}
	m.resize(cfg.Width, cfg.Height)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.searchBar.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case components.SearchRequestedMsg:
		return m.startSearch(msg.Query)

	case analysisCompleteMsg:
		return m.finishSearch(msg)

	case components.AlertDismissedMsg:
		m.alert = m.alert.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	return m, cmd
}

// handleKey routes key presses. Global keys come first; an open alert
// captures everything else.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	if m.alert.Visible() {
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keymap.Quit) {
		return m.quit()
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	return m, cmd
}

// startSearch moves to Loading and issues the request. Blank queries are
// ignored without any state change.
func (m Model) startSearch(query string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(query) == "" {
		return m, nil
	}
	if m.analyzer == nil {
		slog.Error("No analyzer configured, ignoring search")
		return m, nil
	}

	if m.cancelSearch != nil {
		m.cancelSearch()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelSearch = cancel

	m.seq++
	m.query = query
	m.status = viewmodel.StatusLoading
	m.result = model.EmptyResult()
	m.errMessage = ""

	var spin tea.Cmd
	m.searchBar, spin = m.searchBar.SetLoading(true)

	return m, tea.Batch(spin, fetchAnalysis(ctx, m.analyzer, m.seq, query))
}

// finishSearch applies the newest search outcome and drops stale ones.
func (m Model) finishSearch(msg analysisCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.status != viewmodel.StatusLoading {
		slog.Debug("Dropping stale search result", "seq", msg.seq, "current", m.seq)
		return m, nil
	}

	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}

	var focus tea.Cmd
	m.searchBar, focus = m.searchBar.SetLoading(false)

	if msg.err != nil {
		m.status = viewmodel.StatusFailed
		m.errMessage = msg.err.Error()
		m.result = model.EmptyResult()
		return m, focus
	}

	m.status = viewmodel.StatusSuccess
	m.result = msg.result
	if m.result.Transactions == nil {
		m.result.Transactions = []model.Transaction{}
	}
	if m.result.SuspiciousFound {
		m.alert = m.alert.Show()
	}

	return m, focus
}

// helpKeys lists the bindings that currently do something. The dialog
// leaves only its own keys and force quit.
func (m Model) helpKeys() []key.Binding {
	if m.alert.Visible() {
		return append(m.alert.HelpKeys(), m.keymap.ForceQuit)
	}
	return append(m.searchBar.HelpKeys(), m.keymap.Quit, m.keymap.ForceQuit, m.keymap.ClearScreen)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth := max(width-2*horizontalMargin, 1)
	m.searchBar = m.searchBar.Resize(contentWidth)
	m.table = m.table.Resize(contentWidth)
	m.alert = m.alert.Resize(width, height)
	m.help.Width = contentWidth
}

// Status returns the current search status.
func (m Model) Status() viewmodel.SearchStatus {
	return m.status
}

// Query returns the query of the latest accepted search.
func (m Model) Query() string {
	return m.query
}

// Result returns the latest result. It is empty while loading and after a failure.
func (m Model) Result() model.AnalysisResult {
	return m.result
}

// Error returns the failure message of the latest search, if it failed.
func (m Model) Error() string {
	return m.errMessage
}

// AlertVisible reports whether the suspicious-activity alert is open.
func (m Model) AlertVisible() bool {
	return m.alert.Visible()
}
