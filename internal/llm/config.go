package llm

import (
	"os"
	"strconv"
	"time"
)

// LLMConfig holds the settings for the history summary model.
type LLMConfig struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns an LLMConfig with the model disabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   15000,
		Temperature: 0.3,
		MaxTokens:   768,
	}
}

// Timeout is the deadline for one summarize call.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return time.Duration(DefaultConfig().TimeoutMs) * time.Millisecond
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// LoadConfig reads WORKSTATS_LLM_* environment variables over the
// defaults. Unparseable values are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v, err := strconv.ParseBool(os.Getenv("WORKSTATS_LLM_ENABLED")); err == nil {
		cfg.Enabled = v
	}
	if v, err := strconv.ParseBool(os.Getenv("WORKSTATS_LLM_LOG_CALLS")); err == nil {
		cfg.LogCalls = v
	}
	if v := os.Getenv("WORKSTATS_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("WORKSTATS_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, err := strconv.Atoi(os.Getenv("WORKSTATS_LLM_TIMEOUT_MS")); err == nil && n > 0 {
		cfg.TimeoutMs = n
	}
	if f, err := strconv.ParseFloat(os.Getenv("WORKSTATS_LLM_TEMPERATURE"), 64); err == nil && f >= 0 {
		cfg.Temperature = f
	}
	return cfg
}
