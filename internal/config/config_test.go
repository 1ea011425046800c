package config

import (
	"testing"
	"time"

	"github.com/Veraticus/fraudwatch/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, names := range apiKeyEnv {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, err := Load(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
	assert.Equal(t, DefaultAnalysisTimeout, cfg.Analysis.Timeout)
	assert.Equal(t, DefaultTheme, cfg.UI.Theme)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestLoad_Timeout(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Duration
	}{
		{name: "unset uses default", value: nil, want: DefaultAnalysisTimeout},
		{name: "zero string disables", value: "0s", want: 0},
		{name: "zero duration disables", value: time.Duration(0), want: 0},
		{name: "explicit", value: "90s", want: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeyEnv(t)
			values := map[string]any{"llm.provider": ProviderOllama}
			if tt.value != nil {
				values["analysis.timeout"] = tt.value
			}

			cfg, err := Load(newViper(values))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Analysis.Timeout)
		})
	}
}

func TestLoad_APIKeyPrecedence(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load(newViper(nil))
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.LLM.APIKey)

	t.Setenv("GEMINI_API_KEY", "gem-key")
	cfg, err = Load(newViper(nil))
	require.NoError(t, err)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)

	cfg, err = Load(newViper(map[string]any{"llm.api_key": "from-config"}))
	require.NoError(t, err)
	assert.Equal(t, "from-config", cfg.LLM.APIKey)
}

func TestLoad_MissingKeyIsFatal(t *testing.T) {
	clearKeyEnv(t)

	for _, provider := range []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic} {
		t.Run(provider, func(t *testing.T) {
			_, err := Load(newViper(map[string]any{"llm.provider": provider}))
			require.ErrorIs(t, err, common.ErrMissingConfig)
		})
	}
}

func TestLoad_OllamaNeedsNoKey(t *testing.T) {
	clearKeyEnv(t)

	cfg, err := Load(newViper(map[string]any{
		"llm.provider": "Ollama",
		"llm.base_url": "http://localhost:11434",
		"llm.model":    "llama3.1",
	}))
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
}

func TestLoad_ProviderSpecificEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(newViper(map[string]any{
		"llm.provider":     "openai",
		"analysis.timeout": "15s",
		"llm.temperature":  0.2,
	}))
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Analysis.Timeout)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		LLM:      LLMConfig{Provider: ProviderGemini, APIKey: "key"},
		Analysis: AnalysisConfig{Timeout: time.Second},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "unknown provider", mutate: func(c *Config) { c.LLM.Provider = "bard" }, want: common.ErrInvalidConfig},
		{name: "missing key", mutate: func(c *Config) { c.LLM.APIKey = "" }, want: common.ErrMissingConfig},
		{name: "negative timeout", mutate: func(c *Config) { c.Analysis.Timeout = -time.Second }, want: common.ErrInvalidConfig},
		{name: "temperature too high", mutate: func(c *Config) { c.LLM.Temperature = 3 }, want: common.ErrInvalidConfig},
		{name: "negative max tokens", mutate: func(c *Config) { c.LLM.MaxTokens = -1 }, want: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}
