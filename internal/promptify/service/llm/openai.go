package llm

import (
	"context"
	"fmt"
	"net/http"

	"promptify/internal/promptify/config"
	"promptify/internal/promptify/models"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// OpenAIProvider reaches Gemini through its OpenAI-compatible chat completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultOpenAIBaseURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (*models.Completion, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	id := resp.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &models.Completion{
		ID:    id,
		Text:  resp.Choices[0].Message.Content,
		Model: p.model,
		Usage: models.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func (p *OpenAIProvider) GetModelInfo() models.ModelInfo {
	return models.ModelInfo{
		ID:        p.model,
		Name:      "Gemini",
		Provider:  "Google",
		Transport: config.TransportOpenAI,
		Capabilities: []string{
			"text-generation",
		},
	}
}
