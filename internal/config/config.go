package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/fraudwatch/internal/common"
	"github.com/spf13/viper"
)

// Supported LLM providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Defaults applied when a key is unset.
const (
	DefaultProvider        = ProviderGemini
	DefaultAnalysisTimeout = 60 * time.Second
	DefaultTheme           = "default"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

// apiKeyEnv lists the conventional environment variables per provider, in
// lookup order. API_KEY is honoured for gemini to match existing deployments.
var apiKeyEnv = map[string][]string{
	ProviderGemini:    {"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"},
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
	ProviderOllama:    nil,
}

// Config is the process-wide configuration. It is read once at startup and
// passed by value afterwards.
type Config struct {
	LLM      LLMConfig
	Logging  LoggingConfig
	UI       UIConfig
	Analysis AnalysisConfig
}

// LLMConfig selects and authenticates the text model.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// AnalysisConfig controls the analysis client.
type AnalysisConfig struct {
	Timeout time.Duration
}

// UIConfig controls the dashboard.
type UIConfig struct {
	Theme string
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("analysis.timeout", DefaultAnalysisTimeout)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Load builds a Config from v and the process environment and validates it.
// Defaults come from SetDefaults; an explicit zero analysis timeout disables
// the deadline. A missing credential is reported as common.ErrMissingConfig.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LLM: LLMConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			BaseURL:     v.GetString("llm.base_url"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
		},
		Analysis: AnalysisConfig{
			Timeout: v.GetDuration("analysis.timeout"),
		},
		UI: UIConfig{
			Theme: v.GetString("ui.theme"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultProvider
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = lookupAPIKey(cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks provider, credential and numeric settings.
func (c Config) Validate() error {
	envVars, ok := apiKeyEnv[c.LLM.Provider]
	if !ok {
		return fmt.Errorf("%w: unsupported LLM provider: %s", common.ErrInvalidConfig, c.LLM.Provider)
	}

	if c.LLM.Provider != ProviderOllama && c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s API key not found in config (llm.api_key) or environment (FRAUDWATCH_LLM_API_KEY, %s)",
			common.ErrMissingConfig, c.LLM.Provider, strings.Join(envVars, ", "))
	}

	if c.Analysis.Timeout < 0 {
		return fmt.Errorf("%w: analysis timeout must not be negative", common.ErrInvalidConfig)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2", common.ErrInvalidConfig)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("%w: max tokens must not be negative", common.ErrInvalidConfig)
	}

	return nil
}

// DefaultLogFile returns the log path used by the dashboard when none is configured.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "fraudwatch.log")
}

func lookupAPIKey(provider string) string {
	for _, name := range apiKeyEnv[provider] {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}
