package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"promptify/internal/promptify/config"
	"promptify/internal/promptify/models"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini generateContent API through the genai SDK.
type GeminiProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewGeminiProvider(apiKey, model, baseURL string, httpClient *http.Client) *GeminiProvider {
	return &GeminiProvider{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// genaiClient creates the SDK client on first use; it only binds credentials
// and can be shared by concurrent requests afterwards.
func (p *GeminiProvider) genaiClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(
		func() {
			cc := &genai.ClientConfig{
				APIKey:     p.apiKey,
				Backend:    genai.BackendGeminiAPI,
				HTTPClient: p.httpClient,
			}
			if p.baseURL != "" {
				cc.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
			}
			p.client, p.initErr = genai.NewClient(ctx, cc)
		},
	)
	return p.client, p.initErr
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (*models.Completion, error) {
	client, err := p.genaiClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gemini client error: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	result := &models.Completion{
		ID:    uuid.New().String(),
		Text:  resp.Text(),
		Model: p.model,
	}
	if u := resp.UsageMetadata; u != nil {
		result.Usage = models.Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}

	return result, nil
}

func (p *GeminiProvider) GetModelInfo() models.ModelInfo {
	return models.ModelInfo{
		ID:        p.model,
		Name:      "Gemini",
		Provider:  "Google",
		Transport: config.TransportGenAI,
		Capabilities: []string{
			"text-generation",
		},
	}
}
