// Package config loads application settings from an optional YAML file
// plus environment variables. Everything has a working default: the app
// runs with no config file and no environment at all, just degraded to
// fallback content.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mathgeniusvn/mathgenius/internal/explain"
	"github.com/mathgeniusvn/mathgenius/internal/llm"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/tutor"
)

// Defaults preselects the pickers on the home screen. Values are matched
// against the curriculum catalog; anything unrecognized is ignored.
type Defaults struct {
	Grade      string
	Textbook   string
	Difficulty string
}

// Config is the fully resolved application configuration.
type Config struct {
	LLM      llm.Config
	Problem  problem.Config
	Explain  explain.Config
	Tutor    tutor.Config
	Defaults Defaults

	// LogFile receives structured diagnostics. Empty disables logging.
	LogFile string
}

// fileConfig is the YAML shape of the config file. Numeric fields are
// pointers so an omitted key keeps its default rather than zeroing it.
type fileConfig struct {
	Provider string `yaml:"provider"`

	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	OpenAI struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"openai"`

	Anthropic struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"anthropic"`

	Problem struct {
		MaxTokens   *int     `yaml:"max_tokens"`
		Temperature *float64 `yaml:"temperature"`
	} `yaml:"problem"`

	Explain struct {
		MaxTokens   *int     `yaml:"max_tokens"`
		Temperature *float64 `yaml:"temperature"`
	} `yaml:"explain"`

	Tutor struct {
		MaxTokens   *int     `yaml:"max_tokens"`
		Temperature *float64 `yaml:"temperature"`
		MaxTurns    *int     `yaml:"max_turns"`
	} `yaml:"tutor"`

	Defaults struct {
		Grade      string `yaml:"grade"`
		Textbook   string `yaml:"textbook"`
		Difficulty string `yaml:"difficulty"`
	} `yaml:"defaults"`

	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		LLM:     llm.DefaultConfig(),
		Problem: problem.DefaultConfig(),
		Explain: explain.DefaultConfig(),
		Tutor:   tutor.DefaultConfig(),
	}
}

// Load resolves configuration in priority order: defaults, then the YAML
// file at path, then environment variables. An empty path uses
// DefaultPath; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults plus environment.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := applyFile(&cfg, data); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Provider != "" {
		cfg.LLM.Provider = fc.Provider
	}
	if fc.Gemini.APIKey != "" {
		cfg.LLM.Gemini.APIKey = fc.Gemini.APIKey
	}
	if fc.Gemini.Model != "" {
		cfg.LLM.Gemini.Model = fc.Gemini.Model
	}
	if fc.OpenAI.APIKey != "" {
		cfg.LLM.OpenAI.APIKey = fc.OpenAI.APIKey
	}
	if fc.OpenAI.Model != "" {
		cfg.LLM.OpenAI.Model = fc.OpenAI.Model
	}
	if fc.OpenAI.BaseURL != "" {
		cfg.LLM.OpenAI.BaseURL = fc.OpenAI.BaseURL
	}
	if fc.Anthropic.APIKey != "" {
		cfg.LLM.Anthropic.APIKey = fc.Anthropic.APIKey
	}
	if fc.Anthropic.Model != "" {
		cfg.LLM.Anthropic.Model = fc.Anthropic.Model
	}

	if fc.Problem.MaxTokens != nil {
		cfg.Problem.MaxTokens = *fc.Problem.MaxTokens
	}
	if fc.Problem.Temperature != nil {
		cfg.Problem.Temperature = *fc.Problem.Temperature
	}
	if fc.Explain.MaxTokens != nil {
		cfg.Explain.MaxTokens = *fc.Explain.MaxTokens
	}
	if fc.Explain.Temperature != nil {
		cfg.Explain.Temperature = *fc.Explain.Temperature
	}
	if fc.Tutor.MaxTokens != nil {
		cfg.Tutor.MaxTokens = *fc.Tutor.MaxTokens
	}
	if fc.Tutor.Temperature != nil {
		cfg.Tutor.Temperature = *fc.Tutor.Temperature
	}
	if fc.Tutor.MaxTurns != nil {
		cfg.Tutor.MaxTurns = *fc.Tutor.MaxTurns
	}

	cfg.Defaults.Grade = fc.Defaults.Grade
	cfg.Defaults.Textbook = fc.Defaults.Textbook
	cfg.Defaults.Difficulty = fc.Defaults.Difficulty

	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}

// applyEnv layers environment variables over the file. Provider settings
// reuse the llm package's environment handling so the two entry points
// honor the same variables.
func applyEnv(cfg *Config) {
	base := cfg.LLM
	env := llm.ConfigFromEnv()
	def := llm.DefaultConfig()

	if env.Provider != def.Provider {
		base.Provider = env.Provider
	}
	if env.Gemini.APIKey != "" {
		base.Gemini.APIKey = env.Gemini.APIKey
	}
	if env.Gemini.Model != def.Gemini.Model {
		base.Gemini.Model = env.Gemini.Model
	}
	if env.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = env.OpenAI.APIKey
	}
	if env.OpenAI.Model != def.OpenAI.Model {
		base.OpenAI.Model = env.OpenAI.Model
	}
	if env.OpenAI.BaseURL != "" {
		base.OpenAI.BaseURL = env.OpenAI.BaseURL
	}
	if env.Anthropic.APIKey != "" {
		base.Anthropic.APIKey = env.Anthropic.APIKey
	}
	if env.Anthropic.Model != def.Anthropic.Model {
		base.Anthropic.Model = env.Anthropic.Model
	}
	cfg.LLM = base

	if f := os.Getenv("MATHGENIUS_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}
}

// DefaultPath resolves the config file location in priority order:
// 1. MATHGENIUS_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mathgenius/config.yaml
// 3. ~/.config/mathgenius/config.yaml
func DefaultPath() string {
	if p := os.Getenv("MATHGENIUS_CONFIG"); p != "" {
		return p
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathgenius", "config.yaml")
}
