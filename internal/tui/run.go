package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/fraudwatch/internal/analysis"
)

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, analyzer analysis.Analyzer, opts ...Option) error {
	if analyzer == nil {
		return fmt.Errorf("analyzer is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		NewModel(ctx, analyzer, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	slog.Info("Starting dashboard")
	if _, err := program.Run(); err != nil {
		// A cancelled parent context is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("Dashboard stopped", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("Dashboard closed")
	return nil
}
