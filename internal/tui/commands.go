package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/fraudwatch/internal/analysis"
)

// fetchAnalysis runs one search off the event loop.
func fetchAnalysis(ctx context.Context, analyzer analysis.Analyzer, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := analyzer.FetchAnalysis(ctx, query)
		return analysisCompleteMsg{
			seq:    seq,
			result: result,
			err:    err,
		}
	}
}
