package viewmodel

import (
	"time"

	"github.com/Veraticus/fraudwatch/internal/model"
)

// Status badge labels.
const (
	LabelSuspicious = "Suspicious"
	LabelNormal     = "Normal"
)

// TransactionRow is one table row, already formatted for display.
type TransactionRow struct {
	ID         string
	Amount     string
	Score      string
	Timestamp  string
	Status     string
	Tier       model.ScoreTier
	Suspicious bool
}

// NewTransactionRow formats txn for display with timestamps in loc.
func NewTransactionRow(txn model.Transaction, loc *time.Location) TransactionRow {
	return TransactionRow{
		ID:         SanitizeForDisplay(txn.ID),
		Amount:     FormatCurrency(txn.Amount),
		Score:      FormatScore(txn.FraudScore),
		Timestamp:  FormatTimestamp(txn.Timestamp, loc),
		Status:     StatusLabel(txn.IsSuspicious),
		Tier:       txn.Tier(),
		Suspicious: txn.IsSuspicious,
	}
}

// NewTransactionRows formats a whole result, preserving order.
func NewTransactionRows(txns []model.Transaction, loc *time.Location) []TransactionRow {
	rows := make([]TransactionRow, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, NewTransactionRow(txn, loc))
	}
	return rows
}

// StatusLabel returns the badge text for the suspicious flag.
func StatusLabel(suspicious bool) string {
	if suspicious {
		return LabelSuspicious
	}
	return LabelNormal
}
