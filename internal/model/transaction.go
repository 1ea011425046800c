// Package model defines the core domain models used throughout the application.
package model

// Score tier thresholds. A score strictly above the threshold falls in the tier.
const (
	HighRiskThreshold   = 75
	MediumRiskThreshold = 50

	MinFraudScore = 0
	MaxFraudScore = 100
)

// Transaction is a single payment record as reported by the analysis model.
// Values are treated as immutable once received.
type Transaction struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"` // ISO 8601 expected, not enforced
	Amount       float64 `json:"amount"`    // USD
	FraudScore   int     `json:"fraudScore"`
	IsSuspicious bool    `json:"isSuspicious"`
}

// ScoreTier buckets a fraud score for display.
type ScoreTier int

// Score tiers.
const (
	TierLow ScoreTier = iota
	TierMedium
	TierHigh
)

// String returns the tier name.
func (t ScoreTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// TierForScore maps a fraud score onto its tier.
func TierForScore(score int) ScoreTier {
	switch {
	case score > HighRiskThreshold:
		return TierHigh
	case score > MediumRiskThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Tier returns the score tier of the transaction.
func (t Transaction) Tier() ScoreTier {
	return TierForScore(t.FraudScore)
}

// FlagMatchesScore reports whether the suspicious flag agrees with the
// score convention (suspicious exactly when the score is above 75).
func (t Transaction) FlagMatchesScore() bool {
	return t.IsSuspicious == (t.FraudScore > HighRiskThreshold)
}
