package model

// AnalysisResult is the parsed reply for a single search.
type AnalysisResult struct {
	Transactions    []Transaction `json:"transactions"`
	SuspiciousFound bool          `json:"suspiciousFound"`
}

// EmptyResult is returned when a reply carries nothing usable.
func EmptyResult() AnalysisResult {
	return AnalysisResult{Transactions: []Transaction{}}
}

// HasSuspicious reports whether any transaction carries the suspicious flag.
func (r AnalysisResult) HasSuspicious() bool {
	for _, txn := range r.Transactions {
		if txn.IsSuspicious {
			return true
		}
	}
	return false
}

// SuspiciousCount returns the number of flagged transactions.
func (r AnalysisResult) SuspiciousCount() int {
	count := 0
	for _, txn := range r.Transactions {
		if txn.IsSuspicious {
			count++
		}
	}
	return count
}

// IsEmpty returns true if the result holds no transactions.
func (r AnalysisResult) IsEmpty() bool {
	return len(r.Transactions) == 0
}
