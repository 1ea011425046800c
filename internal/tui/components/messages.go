package components

// SearchRequestedMsg is emitted when the user submits the search input.
type SearchRequestedMsg struct {
	Query string
}

// AlertDismissedMsg is emitted when the alert dialog is acknowledged.
type AlertDismissedMsg struct{}
