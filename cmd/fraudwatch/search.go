package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/fraudwatch/internal/cli"
	"github.com/Veraticus/fraudwatch/internal/common"
	"github.com/Veraticus/fraudwatch/internal/model"
)

func searchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one fraud search and print the results",
		Long: `Send a single query to the AI model and print the transactions it returns.

Examples:
  # Show a table of matching transactions
  fraudwatch search suspicious transactions over $500

  # Look up one transaction
  fraudwatch search TXN-10482

  # Machine-readable output
  fraudwatch search --output json "refunds this week"`,
		RunE: a.runSearch,
	}

	cmd.Flags().StringP("output", "o", cli.FormatTable, "Output format (table, json)")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return common.NewUserError("Please provide a search query", common.ErrEmptyQuery)
	}

	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to read output flag: %w", err)
	}
	if err = cli.ValidateFormat(format); err != nil {
		return common.NewUserError(err.Error(), err)
	}

	closer, err := a.setupLogging(a.cfg.Logging.File)
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

	// Set up interrupt handling
	interruptHandler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := interruptHandler.HandleInterrupts(cmd.Context())
	defer stop()

	var result model.AnalysisResult
	err = cli.NewSpinner(cmd.ErrOrStderr(), "Analyzing transactions...").Run(ctx, func(ctx context.Context) error {
		var fetchErr error
		result, fetchErr = analyzer.FetchAnalysis(ctx, query)
		return fetchErr
	})
	if err != nil {
		if interruptHandler.WasInterrupted() {
			return common.NewUserError("Search cancelled", err)
		}
		return err
	}

	return cli.PrintResult(cmd.OutOrStdout(), result, format, time.Local)
}
