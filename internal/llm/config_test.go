package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PREPDECK_LLM_ENABLED", "true")
	t.Setenv("PREPDECK_LLM_ENDPOINT", "http://localhost:9999")
	t.Setenv("PREPDECK_LLM_API_KEY", "sk-test")
	t.Setenv("PREPDECK_LLM_MODEL", "test-model")
	t.Setenv("PREPDECK_LLM_TIMEOUT_MS", "5000")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 12000
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskCaseStudy: {TimeoutMs: 45000},
	}

	assert.Equal(t, 45000, cfg.TaskTimeout(TaskCaseStudy))
	assert.Equal(t, 12000, cfg.TaskTimeout(TaskOptimalAnswer))
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("PREPDECK_LLM_TIMEOUT_MS", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
}
