package llm

import (
	"context"
	"fmt"
	"net/http"

	"promptify/internal/promptify/config"
	"promptify/internal/promptify/models"
)

// Provider submits one fully built prompt to a text-generation model.
// Errors carry the provider's human-readable message.
type Provider interface {
	Generate(ctx context.Context, prompt string) (*models.Completion, error)
	GetModelInfo() models.ModelInfo
}

// NewProvider builds the provider for the configured transport. No network
// traffic happens until the first Generate call.
func NewProvider(cfg config.ProviderConfig, httpClient *http.Client) (Provider, error) {
	switch cfg.Transport {
	case config.TransportGenAI, "":
		return NewGeminiProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient), nil
	case config.TransportOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown provider transport: %q", cfg.Transport)
	}
}
