package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/fraudwatch/internal/model"
	tuitest "github.com/Veraticus/fraudwatch/internal/tui/testing"
	"github.com/Veraticus/fraudwatch/internal/tui/themes"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "TXN00000001", Amount: 1234.5, FraudScore: 12, Timestamp: "2024-05-01T15:04:05Z"},
		{ID: "TXN00000002", Amount: -5, FraudScore: 60, Timestamp: "not a date"},
		{ID: "TXN00000003", Amount: 98000, FraudScore: 92, Timestamp: "2024-05-01T16:00:00Z", IsSuspicious: true},
	}
}

func TestResultsTableModel_Loading(t *testing.T) {
	m := NewResultsTableModel(themes.Default, time.UTC).Resize(120)

	view := tuitest.StripANSI(m.Render(sampleTransactions(), true))

	assert.Equal(t, SkeletonRows, tuitest.CountLinesContaining(view, skeletonGlyph))
	assert.NotContains(t, view, "TXN00000001")
	assert.NotContains(t, view, EmptyTitle)
}

func TestResultsTableModel_Empty(t *testing.T) {
	m := NewResultsTableModel(themes.Default, time.UTC).Resize(120)

	for _, txns := range [][]model.Transaction{nil, {}} {
		view := tuitest.StripANSI(m.Render(txns, false))

		assert.Contains(t, view, EmptyTitle)
		assert.Contains(t, view, EmptyHint)
		assert.Zero(t, tuitest.CountLinesContaining(view, skeletonGlyph))
	}
}

func TestResultsTableModel_Rows(t *testing.T) {
	m := NewResultsTableModel(themes.Default, time.UTC).Resize(120)

	view := tuitest.StripANSI(m.Render(sampleTransactions(), false))

	assert.True(t, tuitest.ContainsInOrder(view,
		"TRANSACTION ID", "AMOUNT", "FRAUD SCORE", "TIMESTAMP", "STATUS",
		"TXN00000001", "$1,234.50", "12", "5/1/2024, 3:04:05 PM", "Normal",
		"TXN00000002", "-$5.00", "60", "not a date", "Normal",
		"TXN00000003", "$98,000.00", "92", "5/1/2024, 4:00:00 PM", "Suspicious",
	))
	assert.Equal(t, 1, tuitest.CountLinesContaining(view, "Suspicious"))
	assert.NotContains(t, view, EmptyTitle)
	assert.Zero(t, tuitest.CountLinesContaining(view, skeletonGlyph))
}

func TestResultsTableModel_RowsFitWidth(t *testing.T) {
	for _, width := range []int{60, 80, 120, 200} {
		m := NewResultsTableModel(themes.Default, time.UTC).Resize(width)
		view := tuitest.StripANSI(m.Render(sampleTransactions(), false))

		for _, line := range strings.Split(view, "\n") {
			assert.LessOrEqual(t, len([]rune(line)), width, "width %d line %q", width, line)
		}
	}
}

func TestResultsTableModel_ColumnWidths(t *testing.T) {
	m := NewResultsTableModel(themes.Default, time.UTC).Resize(120)
	widths := m.columnWidths()

	total := 0
	for _, w := range widths {
		total += w
	}
	assert.Equal(t, 120, total)
	assert.Equal(t, 120-16-13-25-12, widths[0])

	narrow := m.Resize(50).columnWidths()
	assert.Equal(t, minIDWidth, narrow[0])
	total = 0
	for _, w := range narrow {
		total += w
	}
	assert.LessOrEqual(t, total, 50)
}

func TestResultsTableModel_Resize(t *testing.T) {
	m := NewResultsTableModel(themes.Default, nil)
	assert.Equal(t, defaultTableWidth, m.Width())
	assert.Equal(t, 90, m.Resize(90).Width())
	assert.Equal(t, defaultTableWidth, m.Resize(0).Width())
}
