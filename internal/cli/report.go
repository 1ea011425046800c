package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/model"
	"github.com/Veraticus/fraudwatch/internal/tui/viewmodel"
)

// Output formats accepted by PrintResult.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// NoResultsMessage is printed when a search returns no rows.
const NoResultsMessage = "No transactions to display."

var reportHeaders = []string{"TRANSACTION ID", "AMOUNT", "FRAUD SCORE", "TIMESTAMP", "STATUS"}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
}

// PrintResult writes result to w in the given format. Timestamps in the
// table are rendered in loc.
func PrintResult(w io.Writer, result model.AnalysisResult, format string, loc *time.Location) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	if format == FormatJSON {
		if result.Transactions == nil {
			result.Transactions = []model.Transaction{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	if result.IsEmpty() {
		_, err := fmt.Fprintln(w, FormatInfo(NoResultsMessage))
		return err
	}

	if _, err := fmt.Fprintln(w, RenderTable(viewmodel.NewTransactionRows(result.Transactions, loc))); err != nil {
		return err
	}

	if result.SuspiciousFound {
		_, err := fmt.Fprintln(w, "\n"+RenderBox("Suspicious Activity Detected",
			fmt.Sprintf("%d of %d transactions flagged for review.", result.SuspiciousCount(), len(result.Transactions))))
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+FormatSuccess(fmt.Sprintf("No suspicious activity detected (%d analyzed).", len(result.Transactions))))
	return err
}

// RenderTable renders rows as a plain column-aligned table.
func RenderTable(rows []viewmodel.TransactionRow) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.ID, row.Amount, row.Score, row.Timestamp, row.Status})
	}

	widths := make([]int, len(reportHeaders))
	for i, h := range reportHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TableHeaderStyle.Render(joinCells(reportHeaders, widths, nil)))
	for i, line := range cells {
		var style *lipgloss.Style
		if rows[i].Suspicious {
			style = &ErrorStyle
		}
		lines = append(lines, joinCells(line, widths, style))
	}
	return strings.Join(lines, "\n")
}

func joinCells(cells []string, widths []int, style *lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		cellStyle := TableCellStyle.Width(widths[i] + 2)
		if style != nil {
			cellStyle = cellStyle.Inherit(*style)
		}
		parts[i] = cellStyle.Render(cell)
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
}
