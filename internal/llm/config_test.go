package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WORKSTATS_LLM_ENABLED", "true")
	t.Setenv("WORKSTATS_LLM_MODEL", "qwen2.5")
	t.Setenv("WORKSTATS_LLM_ENDPOINT", "http://gpu.local:11434")
	t.Setenv("WORKSTATS_LLM_TIMEOUT_MS", "9000")
	t.Setenv("WORKSTATS_LLM_TEMPERATURE", "0.1")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, "http://gpu.local:11434", cfg.Endpoint)
	assert.Equal(t, 9*time.Second, cfg.Timeout())
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("WORKSTATS_LLM_ENABLED", "maybe")
	t.Setenv("WORKSTATS_LLM_TIMEOUT_MS", "-5")
	t.Setenv("WORKSTATS_LLM_TEMPERATURE", "hot")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestTimeout_NonPositiveUsesDefault(t *testing.T) {
	cfg := LLMConfig{TimeoutMs: 0}
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}
