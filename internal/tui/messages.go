package tui

import "github.com/Veraticus/fraudwatch/internal/model"

// analysisCompleteMsg carries the outcome of one search. seq identifies the
// search that produced it so superseded replies can be dropped.
type analysisCompleteMsg struct {
	err    error
	result model.AnalysisResult
	seq    int
}
