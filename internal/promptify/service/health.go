package service

import (
	"time"

	"promptify/internal/promptify/config"
	"promptify/internal/promptify/models"

	"github.com/jinzhu/copier"
	"github.com/mackerelio/go-osstat/memory"
)

type HealthService struct {
	provider config.ProviderConfig

	// swapped in tests
	memoryStats func() (*memory.Stats, error)
	now         func() time.Time
}

func NewHealthService(provider config.ProviderConfig) *HealthService {
	return &HealthService{
		provider:    provider,
		memoryStats: memory.Get,
		now:         time.Now,
	}
}

// GetHealth reports local readiness only; the provider is never called.
func (s *HealthService) GetHealth() models.HealthStatus {
	var provider models.ProviderStatus
	_ = copier.Copy(&provider, &s.provider)
	provider.Configured = s.provider.APIKey != ""

	status := models.HealthStatus{
		Status:    map[bool]string{true: "healthy", false: "degraded"}[provider.Configured],
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Provider:  provider,
	}

	mem, err := s.memoryStats()
	if err != nil {
		status.Host.Error = err.Error()
	} else {
		status.Host.MemoryTotal = mem.Total
		status.Host.MemoryUsed = mem.Used
	}

	return status
}
