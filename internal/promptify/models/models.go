package models

// GenerateRequest is the inbound body of the generation endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt" form:"prompt"`
}

// GenerateResponse carries the provider text, unmodified.
type GenerateResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

// Completion is what a provider hands back for a single call.
type Completion struct {
	ID    string
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

type ModelInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Transport    string   `json:"transport"`
	Capabilities []string `json:"capabilities"`
}

type HealthStatus struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Provider  ProviderStatus `json:"provider"`
	Host      HostStatus     `json:"host"`
}

// ProviderStatus is the public view of the provider configuration; the
// credential itself is never exposed.
type ProviderStatus struct {
	Model      string `json:"model"`
	Transport  string `json:"transport"`
	BaseURL    string `json:"baseUrl,omitempty"`
	Configured bool   `json:"configured"`
}

type HostStatus struct {
	MemoryTotal uint64 `json:"memoryTotal,omitempty"`
	MemoryUsed  uint64 `json:"memoryUsed,omitempty"`
	Error       string `json:"error,omitempty"`
}
