package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"
)

// geminiClient implements the Client interface over the Generative Language
// REST API (v1beta generateContent).
type geminiClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  newHTTPClient(cfg.HTTPTimeout),
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
	Contents          []geminiContent         `json:"contents"`
}

// geminiResponse represents the generateContent response structure.
type geminiResponse struct {
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Candidates []struct {
		Content      *geminiContent `json:"content"`
		FinishReason string         `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	ModelVersion string `json:"modelVersion"`
}

// Generate requests a single JSON completion constrained to the schema.
func (c *geminiClient) Generate(ctx context.Context, req Request) (Response, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	config := &geminiGenerationConfig{MaxOutputTokens: c.maxTokens}
	if c.temperature > 0 {
		temperature := c.temperature
		config.Temperature = &temperature
	}
	if req.Schema != nil {
		config.ResponseMimeType = "application/json"
		config.ResponseSchema = toGeminiSchema(req.Schema)
	}
	if config.ResponseSchema != nil || config.Temperature != nil || config.MaxOutputTokens > 0 {
		body.GenerationConfig = config
	}

	var response geminiResponse
	if err := c.post(ctx, c.baseURL+"/v1beta/"+c.model+":generateContent", body, &response); err != nil {
		return Response{}, err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			return Response{}, fmt.Errorf("prompt blocked (%s): %w", response.PromptFeedback.BlockReason, ErrEmptyResponse)
		}
		return Response{}, fmt.Errorf("no candidates returned: %w", ErrEmptyResponse)
	}

	candidate := response.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	model := response.ModelVersion
	if model == "" {
		model = strings.TrimPrefix(c.model, "models/")
	}

	return Response{
		Text:         text.String(),
		Model:        model,
		FinishReason: candidate.FinishReason,
		InputTokens:  response.UsageMetadata.PromptTokenCount,
		OutputTokens: response.UsageMetadata.CandidatesTokenCount,
	}, nil
}

// post sends body and decodes the reply into out. Google error envelopes are
// decoded with googleapi so the provider's message ends up in the APIError.
func (c *geminiClient) post(ctx context.Context, url string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := googleapi.CheckResponse(resp); err != nil {
		var apiErr *googleapi.Error
		if !errors.As(err, &apiErr) {
			return fmt.Errorf("request failed: %w", err)
		}
		message := apiErr.Message
		if message == "" {
			message = truncateBody([]byte(apiErr.Body))
		}
		return &APIError{
			Provider:   "gemini",
			StatusCode: apiErr.Code,
			Body:       message,
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// toGeminiSchema converts a Schema to the OpenAPI subset Gemini accepts,
// where type names are upper case and objects carry no additionalProperties.
func toGeminiSchema(s *Schema) map[string]any {
	out := map[string]any{
		"type": strings.ToUpper(string(s.Type)),
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = toGeminiSchema(prop)
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = toGeminiSchema(s.Items)
	}
	return out
}
