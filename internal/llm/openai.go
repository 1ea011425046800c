package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

// openAIClient implements the Client interface for OpenAI API.
type openAIClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

// newOpenAIClient creates a new OpenAI API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4000
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		httpClient:  newHTTPClient(cfg.HTTPTimeout),
	}, nil
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Generate sends a chat completion request, constrained to the schema when given.
func (c *openAIClient) Generate(ctx context.Context, req Request) (Response, error) {
	messages := make([]map[string]string, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.SystemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	requestBody := map[string]any{
		"model":      c.model,
		"messages":   messages,
		"max_tokens": c.maxTokens,
	}
	if c.temperature > 0 {
		requestBody["temperature"] = c.temperature
	}
	if req.Schema != nil {
		requestBody["response_format"] = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "analysis_result",
				"strict": true,
				"schema": req.Schema.JSONSchema(),
			},
		}
	}

	var response openAIResponse
	err := postJSON(ctx, c.httpClient, "OpenAI", c.baseURL+"/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + c.apiKey}, requestBody, &response)
	if err != nil {
		return Response{}, err
	}

	if len(response.Choices) == 0 {
		return Response{}, fmt.Errorf("no completion choices returned: %w", ErrEmptyResponse)
	}

	return Response{
		Text:         response.Choices[0].Message.Content,
		Model:        response.Model,
		FinishReason: response.Choices[0].FinishReason,
		InputTokens:  response.Usage.PromptTokens,
		OutputTokens: response.Usage.CompletionTokens,
	}, nil
}
