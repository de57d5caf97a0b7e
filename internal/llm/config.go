package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskQuestionCheck    TaskType = "question_check"
	TaskOptimalAnswer    TaskType = "optimal_answer"
	TaskAnswerAnalysis   TaskType = "answer_analysis"
	TaskCaseStudy        TaskType = "case_study"
	TaskCaseEvaluation   TaskType = "case_evaluation"
	TaskPromptedQuestion TaskType = "prompted_questions"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	APIKey    string
	Model     string
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with conservative defaults. Generation is
// disabled until an endpoint and key are configured.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		Endpoint:  "https://api.openai.com",
		Model:     "gpt-4o-mini",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskQuestionCheck:    {Temperature: 0.1, MaxTokens: 256, TimeoutMs: 10000},
			TaskOptimalAnswer:    {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 30000},
			TaskAnswerAnalysis:   {Temperature: 0.2, MaxTokens: 1536, TimeoutMs: 30000},
			TaskCaseStudy:        {Temperature: 0.8, MaxTokens: 2048, TimeoutMs: 30000},
			TaskCaseEvaluation:   {Temperature: 0.2, MaxTokens: 1536, TimeoutMs: 30000},
			TaskPromptedQuestion: {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling back
// to defaults for unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PREPDECK_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PREPDECK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PREPDECK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PREPDECK_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PREPDECK_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PREPDECK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a task type: the task-specific
// value if set, otherwise the global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
