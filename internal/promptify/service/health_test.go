package service

import (
	"errors"
	"testing"
	"time"

	"promptify/internal/promptify/config"

	"github.com/mackerelio/go-osstat/memory"
	"github.com/stretchr/testify/assert"
)

func TestGetHealth(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		apiKey     string
		memErr     error
		wantStatus string
	}{
		{name: "configured", apiKey: "secret", wantStatus: "healthy"},
		{name: "missing key", apiKey: "", wantStatus: "degraded"},
		{name: "memory unavailable", apiKey: "secret", memErr: errors.New("not implemented"), wantStatus: "healthy"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				s := NewHealthService(
					config.ProviderConfig{
						APIKey:    tt.apiKey,
						Model:     "gemini-1.5-flash",
						Transport: config.TransportGenAI,
					},
				)
				s.now = func() time.Time { return fixed }
				s.memoryStats = func() (*memory.Stats, error) {
					if tt.memErr != nil {
						return nil, tt.memErr
					}
					return &memory.Stats{Total: 1024, Used: 512}, nil
				}

				health := s.GetHealth()

				assert.Equal(t, tt.wantStatus, health.Status)
				assert.Equal(t, "2026-10-16T12:00:00Z", health.Timestamp)
				assert.Equal(t, "gemini-1.5-flash", health.Provider.Model)
				assert.Equal(t, config.TransportGenAI, health.Provider.Transport)
				assert.Equal(t, tt.apiKey != "", health.Provider.Configured)
				if tt.memErr != nil {
					assert.Equal(t, "not implemented", health.Host.Error)
					assert.Zero(t, health.Host.MemoryTotal)
				} else {
					assert.Equal(t, uint64(1024), health.Host.MemoryTotal)
					assert.Equal(t, uint64(512), health.Host.MemoryUsed)
				}
			},
		)
	}
}
