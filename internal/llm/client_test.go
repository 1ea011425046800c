package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
		want   bool
	}{
		{name: "401 unauthorized", status: http.StatusUnauthorized, target: ErrUnauthorized, want: true},
		{name: "403 unauthorized", status: http.StatusForbidden, target: ErrUnauthorized, want: true},
		{name: "429 rate limited", status: http.StatusTooManyRequests, target: ErrRateLimited, want: true},
		{name: "500 not unauthorized", status: http.StatusInternalServerError, target: ErrUnauthorized, want: false},
		{name: "401 not rate limited", status: http.StatusUnauthorized, target: ErrRateLimited, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{Provider: "test", StatusCode: tt.status})
			assert.Equal(t, tt.want, errors.Is(err, tt.target))
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Provider: "OpenAI", StatusCode: 500, Body: "boom"}
	assert.Equal(t, "OpenAI API error (status 500): boom", err.Error())
}

func TestTruncateBody(t *testing.T) {
	short := []byte("short")
	assert.Equal(t, "short", truncateBody(short))

	long := []byte(strings.Repeat("x", maxErrorBody+10))
	got := truncateBody(long)
	assert.Len(t, got, maxErrorBody+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantType any
		wantErr  bool
	}{
		{name: "openai", cfg: Config{Provider: "openai", APIKey: "k"}, wantType: &openAIClient{}},
		{name: "anthropic upper case", cfg: Config{Provider: "Anthropic", APIKey: "k"}, wantType: &anthropicClient{}},
		{name: "ollama without key", cfg: Config{Provider: "ollama"}, wantType: &ollamaClient{}},
		{name: "gemini", cfg: Config{Provider: "gemini", APIKey: "k"}, wantType: &geminiClient{}},
		{name: "gemini without key", cfg: Config{Provider: "gemini"}, wantErr: true},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "unknown", cfg: Config{Provider: "bard", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, client)
		})
	}
}
