package service

import (
	"context"
	"strings"

	"promptify/internal/promptify/models"
	"promptify/internal/promptify/prompt"
	"promptify/internal/promptify/service/llm"
	"promptify/pkg/logger"
)

// Generator turns a user request into an instructional prompt, submits it to
// the provider once and relays the text.
type Generator struct {
	provider llm.Provider
	apiKey   string
}

func NewGenerator(provider llm.Provider, apiKey string) *Generator {
	return &Generator{
		provider: provider,
		apiKey:   apiKey,
	}
}

// Generate returns either the provider text or a *GenerationError. The
// provider is not contacted unless the request and credential are present.
func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, newError(MissingInput, nil)
	}

	if !g.Configured() {
		return nil, newError(Misconfiguration, nil)
	}

	instructions, err := prompt.Build(req.Prompt)
	if err != nil {
		logger.Error("Error building prompt", "error", err)
		return nil, newError(GenerationFailed, err)
	}

	completion, err := g.provider.Generate(ctx, instructions)
	if err != nil {
		logger.Error("Error generating content", "error", err)
		return nil, ClassifyProviderError(err)
	}

	logger.Info(
		"Generated content",
		"id", completion.ID,
		"model", completion.Model,
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens,
	)

	return &models.GenerateResponse{Response: completion.Text}, nil
}

func (g *Generator) Configured() bool {
	return g.apiKey != "" && g.provider != nil
}

func (g *Generator) GetModelInfo() models.ModelInfo {
	if g.provider == nil {
		return models.ModelInfo{}
	}
	return g.provider.GetModelInfo()
}
