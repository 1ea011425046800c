package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/fraudwatch/internal/config"
	"github.com/Veraticus/fraudwatch/internal/tui"
	"github.com/Veraticus/fraudwatch/internal/tui/themes"
)

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive fraud detection dashboard",
		Long: `Open a full-screen dashboard with a search box and a results table.

Type a query such as "suspicious transactions over $500" and press Enter.
Rows the model marks as suspicious are highlighted and raise an alert.
Logs go to a file so they do not disturb the screen.`,
		Args: cobra.NoArgs,
		RunE: a.runDashboard,
	}
}

func (a *app) runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	logFile := a.cfg.Logging.File
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}
	closer, err := a.setupLogging(logFile)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			slog.Warn("Failed to close log file", "error", closeErr)
		}
	}()

	analyzer, err := a.newAnalyzer(a.cfg)
	if err != nil {
		return err
	}

	slog.Info("Opening dashboard", "provider", a.cfg.LLM.Provider, "theme", a.cfg.UI.Theme)
	return a.runTUI(ctx, analyzer, tui.WithTheme(themes.GetTheme(a.cfg.UI.Theme)))
}
