package domain_test

import (
	"testing"
	"time"

	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.DiffPreview)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestConfig_ApplyOnlySpecifiedFields(t *testing.T) {
	cfg := domain.DefaultConfig().Apply(domain.ConfigOverrides{
		Endpoint:    ptr("http://localhost:8080/fix"),
		DiffPreview: ptr(false),
	})
	assert.Equal(t, "http://localhost:8080/fix", cfg.Endpoint)
	assert.False(t, cfg.DiffPreview)
	assert.Equal(t, 30000, cfg.TimeoutMs)
}

func TestConfig_ValidateTimeout(t *testing.T) {
	cfg := domain.DefaultConfig().Apply(domain.ConfigOverrides{TimeoutMs: ptr(0)})
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "timeout_ms")
}

func TestConfig_ValidateEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		valid    bool
	}{
		{"", true},
		{"http://localhost:5678/webhook/fix", true},
		{"https://fix.example.com", true},
		{"ftp://example.com", false},
		{"localhost:5678", false},
		{"http://", false},
	}
	for _, tt := range tests {
		cfg := domain.DefaultConfig().Apply(domain.ConfigOverrides{Endpoint: ptr(tt.endpoint)})
		if tt.valid {
			assert.NoError(t, cfg.Validate(), tt.endpoint)
		} else {
			assert.ErrorIs(t, cfg.Validate(), domain.ErrConfig, tt.endpoint)
		}
	}
}
