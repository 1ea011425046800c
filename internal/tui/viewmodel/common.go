// Package viewmodel holds pure display data and formatting for the dashboard.
// Nothing here touches the terminal or owns domain state.
package viewmodel

import "fmt"

// SearchStatus is the lifecycle of the current search.
type SearchStatus int

const (
	// StatusIdle means no search has been issued yet.
	StatusIdle SearchStatus = iota
	// StatusLoading means a request is in flight.
	StatusLoading
	// StatusSuccess means the last request returned a result.
	StatusSuccess
	// StatusFailed means the last request failed.
	StatusFailed
)

// String returns a string representation of the status.
func (s SearchStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}
