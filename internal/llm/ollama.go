package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// ollamaClient talks to a local Ollama server. No credential is needed.
type ollamaClient struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	temperature float64
}

func newOllamaClient(cfg Config) (Client, error) {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "llama3.1"
	}

	return &ollamaClient{
		baseURL:     baseURL,
		model:       model,
		temperature: cfg.Temperature,
		httpClient:  newHTTPClient(cfg.HTTPTimeout),
	}, nil
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	DoneReason      string `json:"done_reason"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	Done            bool   `json:"done"`
}

// Generate calls /api/generate without streaming. The schema is passed as the
// format so the server constrains decoding to it.
func (c *ollamaClient) Generate(ctx context.Context, req Request) (Response, error) {
	requestBody := map[string]any{
		"model":  c.model,
		"prompt": req.Prompt,
		"stream": false,
	}
	if req.SystemPrompt != "" {
		requestBody["system"] = req.SystemPrompt
	}
	if req.Schema != nil {
		requestBody["format"] = req.Schema.JSONSchema()
	}
	if c.temperature > 0 {
		requestBody["options"] = map[string]any{"temperature": c.temperature}
	}

	var response ollamaResponse
	if err := postJSON(ctx, c.httpClient, "ollama", c.baseURL+"/api/generate", nil, requestBody, &response); err != nil {
		return Response{}, err
	}

	if response.Response == "" {
		return Response{}, fmt.Errorf("ollama returned empty response: %w", ErrEmptyResponse)
	}

	return Response{
		Text:         response.Response,
		Model:        response.Model,
		FinishReason: response.DoneReason,
		InputTokens:  response.PromptEvalCount,
		OutputTokens: response.EvalCount,
	}, nil
}
