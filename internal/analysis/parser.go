package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Veraticus/fraudwatch/internal/llm"
	"github.com/Veraticus/fraudwatch/internal/model"
)

// placeholderIDPrefix names rows that arrived without an id.
const placeholderIDPrefix = "UNKNOWN-"

// parseReport counts what the parser had to repair or discard.
type parseReport struct {
	Malformed    string // reason the whole reply was unusable, if it was
	Dropped      int
	Clamped      int
	Placeholders int
	Mismatched   int
	FlagRaised   bool // suspiciousFound was false but a row was flagged
}

// parseResult turns a model reply into an AnalysisResult. It never fails:
// anything that is not a JSON object with a transactions array yields an
// empty result, and rows that cannot be read are skipped.
func parseResult(text string) (model.AnalysisResult, parseReport) {
	var report parseReport

	var doc map[string]any
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &doc); err != nil {
		report.Malformed = fmt.Sprintf("reply is not a JSON object: %v", err)
		return model.EmptyResult(), report
	}

	rows, ok := doc[fieldTransactions].([]any)
	if !ok {
		report.Malformed = "reply has no transactions array"
		return model.EmptyResult(), report
	}

	result := model.AnalysisResult{
		Transactions: make([]model.Transaction, 0, len(rows)),
	}
	if flag, ok := doc[fieldSuspiciousFound].(bool); ok {
		result.SuspiciousFound = flag
	}

	for i, row := range rows {
		txn, ok := parseTransaction(row, i+1, &report)
		if !ok {
			report.Dropped++
			continue
		}
		if !txn.FlagMatchesScore() {
			report.Mismatched++
		}
		result.Transactions = append(result.Transactions, txn)
	}

	// A flagged row always raises the alert, whatever the top-level flag says.
	if !result.SuspiciousFound && result.HasSuspicious() {
		result.SuspiciousFound = true
		report.FlagRaised = true
	}

	return result, report
}

// parseTransaction reads one row. Rows that are not objects, or whose
// amount, score or flag are missing or mistyped, are rejected.
func parseTransaction(row any, position int, report *parseReport) (model.Transaction, bool) {
	fields, ok := row.(map[string]any)
	if !ok {
		return model.Transaction{}, false
	}

	amount, ok := fields[fieldAmount].(float64)
	if !ok {
		return model.Transaction{}, false
	}

	rawScore, ok := fields[fieldFraudScore].(float64)
	if !ok {
		return model.Transaction{}, false
	}

	suspicious, ok := fields[fieldIsSuspicious].(bool)
	if !ok {
		return model.Transaction{}, false
	}

	id, ok := optionalString(fields, fieldID)
	if !ok {
		return model.Transaction{}, false
	}
	if id == "" {
		id = fmt.Sprintf("%s%d", placeholderIDPrefix, position)
		report.Placeholders++
	}

	timestamp, ok := optionalString(fields, fieldTimestamp)
	if !ok {
		return model.Transaction{}, false
	}

	score, clamped := normalizeScore(rawScore)
	if clamped {
		report.Clamped++
	}

	return model.Transaction{
		ID:           id,
		Timestamp:    timestamp,
		Amount:       amount,
		FraudScore:   score,
		IsSuspicious: suspicious,
	}, true
}

// optionalString returns the string under key, "" when absent, and false
// when present with another type.
func optionalString(fields map[string]any, key string) (string, bool) {
	value, present := fields[key]
	if !present || value == nil {
		return "", true
	}
	s, ok := value.(string)
	return s, ok
}

// normalizeScore rounds a score to an integer and clamps it into range.
func normalizeScore(raw float64) (score int, clamped bool) {
	rounded := math.Round(raw)
	switch {
	case rounded < model.MinFraudScore:
		return model.MinFraudScore, true
	case rounded > model.MaxFraudScore:
		return model.MaxFraudScore, true
	default:
		return int(rounded), false
	}
}
