package analysis

import "errors"

// FailureMessage is the only text shown for a failed analysis call.
const FailureMessage = "Failed to get a valid response from the AI model."

// ErrAnalysisFailed matches every *AnalysisError via errors.Is.
var ErrAnalysisFailed = errors.New("analysis failed")

// AnalysisError reports a transport, credential or provider failure. Its
// message is always FailureMessage; the cause is kept for logs and errors.Is.
type AnalysisError struct {
	Err      error
	SearchID string
}

func (e *AnalysisError) Error() string {
	return FailureMessage
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is makes every AnalysisError match ErrAnalysisFailed.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}
