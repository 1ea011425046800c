package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/fraudwatch/internal/analysis"
	"github.com/Veraticus/fraudwatch/internal/common"
	"github.com/Veraticus/fraudwatch/internal/config"
	"github.com/Veraticus/fraudwatch/internal/llm"
	"github.com/Veraticus/fraudwatch/internal/tui"
	"github.com/Veraticus/fraudwatch/internal/tui/themes"
)

const envPrefix = "FRAUDWATCH"

// app carries the state shared by all commands. The constructors are
// fields so tests can run commands without a network or a terminal.
type app struct {
	v           *viper.Viper
	cfgFile     string
	cfg         config.Config
	newAnalyzer func(config.Config) (analysis.Analyzer, error)
	runTUI      func(context.Context, analysis.Analyzer, ...tui.Option) error
}

func newApp() *app {
	v := viper.New()
	config.SetDefaults(v)
	return &app{
		v:           v,
		newAnalyzer: newAnalyzer,
		runTUI:      tui.Run,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fraudwatch",
		Short: "AI-assisted transaction fraud search",
		Long: `fraudwatch: Search transactions in plain language and let an AI model
flag the ones that look suspicious.

Run without a subcommand to open the dashboard.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runDashboard,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/fraudwatch/config.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (console, json)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("provider", config.DefaultProvider, "LLM provider (gemini, openai, anthropic, ollama)")
	flags.String("model", "", "model name (provider default when empty)")
	flags.Duration("timeout", config.DefaultAnalysisTimeout, "deadline for a single analysis request")
	flags.String("theme", config.DefaultTheme, fmt.Sprintf("dashboard color theme %v", themes.Names()))

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("logging.file", flags.Lookup("log-file"))
	_ = a.v.BindPFlag("llm.provider", flags.Lookup("provider"))
	_ = a.v.BindPFlag("llm.model", flags.Lookup("model"))
	_ = a.v.BindPFlag("analysis.timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("ui.theme", flags.Lookup("theme"))

	rootCmd.AddCommand(dashboardCmd(a))
	rootCmd.AddCommand(searchCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(fmt.Sprintf("%s/.config/fraudwatch", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables: llm.api_key is read from FRAUDWATCH_LLM_API_KEY.
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// setupLogging installs the default slog logger. An empty path logs to stderr.
func (a *app) setupLogging(path string) (io.Closer, error) {
	level, err := common.ParseLevel(a.cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	closer, err := common.SetupLogger(level, a.cfg.Logging.Format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return closer, nil
}

// newAnalyzer creates the analysis service for cfg. Call it after logging
// is set up so the service picks up the configured logger.
func newAnalyzer(cfg config.Config) (analysis.Analyzer, error) {
	client, err := llm.NewClient(llm.Config{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	service, err := analysis.NewService(client, analysis.WithTimeout(cfg.Analysis.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}
	return service, nil
}
