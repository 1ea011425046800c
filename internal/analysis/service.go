// Package analysis turns a free-text search into a fraud analysis by asking
// the configured text model for structured transaction records.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/fraudwatch/internal/common"
	"github.com/Veraticus/fraudwatch/internal/llm"
	"github.com/Veraticus/fraudwatch/internal/model"
)

// DefaultTimeout bounds a single analysis call.
const DefaultTimeout = 60 * time.Second

// Analyzer is implemented by anything that can answer a search.
type Analyzer interface {
	FetchAnalysis(ctx context.Context, query string) (model.AnalysisResult, error)
}

// Service issues one structured generation call per search.
type Service struct {
	client  llm.Client
	prompts *PromptBuilder
	schema  *llm.Schema
	logger  *slog.Logger
	newID   func() string
	timeout time.Duration
}

// Ensure Service implements Analyzer.
var _ Analyzer = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout sets the per-call deadline. Zero or negative disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

// withIDGenerator replaces the search id source in tests.
func withIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates an analysis service over client.
func NewService(client llm.Client, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}

	prompts, err := NewPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}

	s := &Service{
		client:  client,
		prompts: prompts,
		schema:  ResponseSchema(),
		logger:  slog.Default(),
		newID:   uuid.NewString,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// FetchAnalysis asks the model for transactions matching query.
//
// A blank query returns common.ErrEmptyQuery without any outbound call.
// Transport and provider failures return an *AnalysisError. A reply that
// cannot be read is not an error: it yields an empty result.
func (s *Service) FetchAnalysis(ctx context.Context, query string) (model.AnalysisResult, error) {
	if strings.TrimSpace(query) == "" {
		return model.AnalysisResult{}, common.ErrEmptyQuery
	}

	searchID := s.newID()
	logger := s.logger.With("search_id", searchID)

	prompt, err := s.prompts.BuildAnalysisPrompt(query)
	if err != nil {
		return model.AnalysisResult{}, s.fail(logger, searchID, fmt.Errorf("failed to build prompt: %w", err))
	}
	system, err := s.prompts.BuildSystemPrompt()
	if err != nil {
		return model.AnalysisResult{}, s.fail(logger, searchID, fmt.Errorf("failed to build system prompt: %w", err))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger.Info("Requesting analysis", "query_length", len(query))
	start := time.Now()

	resp, err := s.client.Generate(ctx, llm.Request{
		SystemPrompt: system,
		Prompt:       prompt,
		Schema:       s.schema,
	})
	if err != nil {
		return model.AnalysisResult{}, s.fail(logger, searchID, err)
	}

	result, report := parseResult(resp.Text)
	s.logReport(logger, report)

	logger.Info("Analysis complete",
		"model", resp.Model,
		"duration", time.Since(start),
		"transactions", len(result.Transactions),
		"suspicious", result.SuspiciousCount(),
		"suspicious_found", result.SuspiciousFound,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
	)

	return result, nil
}

func (s *Service) fail(logger *slog.Logger, searchID string, cause error) error {
	logger.Error("Analysis request failed", "error", cause)
	return &AnalysisError{Err: cause, SearchID: searchID}
}

func (s *Service) logReport(logger *slog.Logger, report parseReport) {
	if report.Malformed != "" {
		logger.Warn("Parsed data is not in the expected format", "reason", report.Malformed)
		return
	}
	if report.Dropped > 0 {
		logger.Warn("Dropped unreadable transactions", "count", report.Dropped)
	}
	if report.Clamped > 0 {
		logger.Warn("Clamped out-of-range fraud scores", "count", report.Clamped)
	}
	if report.Placeholders > 0 {
		logger.Warn("Assigned placeholder transaction ids", "count", report.Placeholders)
	}
	if report.Mismatched > 0 {
		logger.Debug("Suspicious flag disagrees with fraud score", "count", report.Mismatched)
	}
	if report.FlagRaised {
		logger.Debug("Raised suspiciousFound to match flagged transactions")
	}
}
