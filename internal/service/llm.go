package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TextGenerator is the generative-text capability: one prompt in, one
// structured JSON payload out. The recommendation generator depends on this
// interface so tests can substitute a stub.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, schema map[string]interface{}) (json.RawMessage, error)
}

// LLMService calls an OpenAI-compatible chat completions endpoint with a
// JSON-schema response format.
type LLMService struct {
	client   *resty.Client
	model    string
	endpoint string
}

// LLMConfig holds configuration for the LLM service.
type LLMConfig struct {
	Model   string
	APIKey  string
	BaseURL string
}

// NewLLMService creates a new LLM service.
// Parameters:
//   - cfg: LLM configuration including model, API key, and base URL.
// Returns:
//   - *LLMService: initialized LLM client wrapper.
func NewLLMService(cfg *LLMConfig) *LLMService {
	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	// Generation is slow; give it room but never hang forever
	client.SetTimeout(60 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	endpoint := baseURL + "/chat/completions"

	return &LLMService{
		client:   client,
		model:    cfg.Model,
		endpoint: endpoint,
	}
}

// GetModel returns the model name being used.
// Parameters: none.
// Returns:
//   - string: model identifier.
func (s *LLMService) GetModel() string {
	return s.model
}

// OpenAI-compatible Chat Completion API request/response structures
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string         `json:"type"`
	JSONSchema jsonSchemaSpec `json:"json_schema"`
}

type jsonSchemaSpec struct {
	Name   string                 `json:"name"`
	Schema map[string]interface{} `json:"schema"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends a prompt and returns the model's structured JSON payload.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - prompt: natural-language instruction.
//   - schema: JSON schema the response must conform to.
// Returns:
//   - json.RawMessage: raw JSON document emitted by the model.
//   - error: non-nil if the API request fails or returns no content.
func (s *LLMService) Complete(ctx context.Context, prompt string, schema map[string]interface{}) (json.RawMessage, error) {
	req := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaSpec{
				Name:   "recommendations",
				Schema: schema,
			},
		},
	}

	var resp chatResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(s.endpoint)

	if err != nil {
		return nil, fmt.Errorf("failed to call LLM API: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		errorMsg := fmt.Sprintf("HTTP %d", httpResp.StatusCode())
		if resp.Error != nil {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), resp.Error.Message)
		} else if len(httpResp.Body()) > 0 {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
		}
		return nil, fmt.Errorf("LLM API returned error: %s", errorMsg)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("LLM API error: %s", resp.Error.Message)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no response from LLM API (status: %d)", httpResp.StatusCode())
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}
