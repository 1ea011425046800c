package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/model"
	"github.com/Veraticus/fraudwatch/internal/tui/themes"
	"github.com/Veraticus/fraudwatch/internal/tui/viewmodel"
)

// SkeletonRows is the number of placeholder rows shown while loading.
const SkeletonRows = 5

// Empty state text.
const (
	EmptyTitle = "No transactions to display."
	EmptyHint  = "Enter a query above to begin."
)

const (
	defaultTableWidth = 100
	minIDWidth        = 12
	skeletonGlyph     = "░"
)

// column describes one table column. The id column takes the remaining width.
type column struct {
	title    string
	width    int
	skeleton float64 // share of the cell filled by a placeholder bar
}

var columns = []column{
	{title: "TRANSACTION ID", skeleton: 0.75},
	{title: "AMOUNT", width: 16, skeleton: 0.5},
	{title: "FRAUD SCORE", width: 13, skeleton: 0.25},
	{title: "TIMESTAMP", width: 25, skeleton: 1},
	{title: "STATUS", width: 12, skeleton: 0.8},
}

// ResultsTableModel renders transactions. It keeps only layout state; the
// rows to show are passed in on every render.
type ResultsTableModel struct {
	theme    themes.Theme
	location *time.Location
	width    int
}

// NewResultsTableModel creates a table rendering timestamps in loc.
func NewResultsTableModel(theme themes.Theme, loc *time.Location) ResultsTableModel {
	if loc == nil {
		loc = time.Local
	}
	return ResultsTableModel{
		theme:    theme,
		location: loc,
		width:    defaultTableWidth,
	}
}

// Resize sets the table width.
func (m ResultsTableModel) Resize(width int) ResultsTableModel {
	if width > 0 {
		m.width = width
	}
	return m
}

// Width returns the current table width.
func (m ResultsTableModel) Width() int {
	return m.width
}

// Render draws the table for the given state: placeholders while loading,
// the empty notice when there is nothing to show, rows otherwise.
func (m ResultsTableModel) Render(transactions []model.Transaction, loading bool) string {
	widths := m.columnWidths()

	lines := []string{m.renderHeader(widths)}
	switch {
	case loading:
		for i := 0; i < SkeletonRows; i++ {
			lines = append(lines, m.renderSkeletonRow(widths))
		}
	case len(transactions) == 0:
		lines = append(lines, "", m.renderEmpty(), "")
	default:
		for _, row := range viewmodel.NewTransactionRows(transactions, m.location) {
			lines = append(lines, m.renderRow(row, widths))
		}
	}

	return strings.Join(lines, "\n")
}

// columnWidths fits the columns into the table width. Fixed columns shrink
// proportionally when the terminal is too narrow.
func (m ResultsTableModel) columnWidths() []int {
	widths := make([]int, len(columns))

	fixed := 0
	for i, col := range columns[1:] {
		widths[i+1] = col.width
		fixed += col.width
	}

	remaining := m.width - fixed
	if remaining < minIDWidth {
		available := max(m.width-minIDWidth, len(columns)-1)
		for i := 1; i < len(widths); i++ {
			widths[i] = max(widths[i]*available/fixed, 1)
		}
		remaining = minIDWidth
	}
	widths[0] = remaining

	return widths
}

func (m ResultsTableModel) renderHeader(widths []int) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = cell(col.title, widths[i], lipgloss.NewStyle())
	}
	return m.theme.TableHeader.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m ResultsTableModel) renderSkeletonRow(widths []int) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		bar := int(float64(widths[i]-2) * col.skeleton)
		cells[i] = cell(strings.Repeat(skeletonGlyph, max(bar, 1)), widths[i], m.theme.Skeleton)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m ResultsTableModel) renderRow(row viewmodel.TransactionRow, widths []int) string {
	base := m.theme.Normal
	if row.Suspicious {
		base = base.Background(m.theme.SuspiciousRow.GetBackground())
	}
	styled := func(style lipgloss.Style) lipgloss.Style {
		if row.Suspicious {
			return style.Background(m.theme.SuspiciousRow.GetBackground())
		}
		return style
	}

	cells := []string{
		cell(row.ID, widths[0], styled(m.theme.Muted)),
		cell(row.Amount, widths[1], base),
		cell(row.Score, widths[2], styled(m.theme.ScoreStyle(row.Tier))),
		cell(row.Timestamp, widths[3], styled(m.theme.Muted)),
		cell(row.Status, widths[4], styled(m.theme.BadgeStyle(row.Suspicious))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m ResultsTableModel) renderEmpty() string {
	block := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.EmptyState.Render(EmptyTitle),
		m.theme.Muted.Render(EmptyHint),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

// cell pads text to width, leaving one column of gutter and truncating overflow.
func cell(text string, width int, style lipgloss.Style) string {
	content := viewmodel.Truncate(text, width-1)
	return style.Width(width).MaxWidth(width).Render(content)
}
