package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner shows an indeterminate progress indicator while a call runs.
type Spinner struct {
	writer      io.Writer
	description string
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, description string) *Spinner {
	return &Spinner{writer: w, description: description}
}

// Run calls fn while the spinner animates and clears it when fn returns.
func (s *Spinner) Run(ctx context.Context, fn func(context.Context) error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+s.description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := bar.Add(1); err != nil {
					slog.Debug("Failed to update spinner", "error", err)
				}
			}
		}
	}()

	err := fn(ctx)
	close(done)

	if finishErr := bar.Finish(); finishErr != nil {
		slog.Debug("Failed to clear spinner", "error", finishErr)
	}
	return err
}
