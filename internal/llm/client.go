package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	// Generate issues exactly one completion request and returns the raw text.
	Generate(ctx context.Context, req Request) (Response, error)
}

// Request is a single structured-output completion request.
type Request struct {
	Schema       *Schema
	SystemPrompt string
	Prompt       string
}

// Response contains the model's raw reply.
type Response struct {
	Text         string
	Model        string
	FinishReason string
	InputTokens  int
	OutputTokens int
}

// Config holds provider settings for a Client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	HTTPTimeout time.Duration
}

// Provider errors.
var (
	ErrUnauthorized  = errors.New("provider rejected credentials")
	ErrRateLimited   = errors.New("provider rate limit exceeded")
	ErrEmptyResponse = errors.New("provider returned no content")
)

// APIError is a non-success reply from a provider.
type APIError struct {
	Provider   string
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// Is maps well-known status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

const maxErrorBody = 512

func truncateBody(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	return string(body[:maxErrorBody]) + "..."
}
