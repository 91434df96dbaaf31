// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/llm"
)

// Default values applied by MergeWithDefaults.
const (
	DefaultPort       = 3000
	DefaultLLMTimeout = "30s"
	DefaultLLMRetries = 2
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config represents the application configuration. It can be loaded from a JSON
// file and overlaid with environment variables. All fields are optional.
type Config struct {
	// Server
	Port      int    `json:"port,omitempty"`       // HTTP port
	StaticDir string `json:"static_dir,omitempty"` // Directory served at "/"

	// Language model
	Provider      string `json:"provider,omitempty"`        // gemini, openai or none
	Model         string `json:"model,omitempty"`           // Overrides the model for every tier
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key
	OpenAIAPIKey  string `json:"openai_api_key,omitempty"`  // OpenAI API key
	OpenAIBaseURL string `json:"openai_base_url,omitempty"` // OpenAI-compatible endpoint
	LLMTimeout    string `json:"llm_timeout,omitempty"`     // Per-call timeout, e.g. "30s"
	LLMRetries    int    `json:"llm_retries,omitempty"`     // Attempts per call

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for chat sessions

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // logrus level name
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:       DefaultPort,
		LLMTimeout: DefaultLLMTimeout,
		LLMRetries: DefaultLLMRetries,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables. Unset or
// unparsable variables leave the field at its zero value.
func FromEnv() Config {
	return Config{
		Port:          envInt("PORT"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		Provider:      os.Getenv("LLM_PROVIDER"),
		Model:         os.Getenv("LLM_MODEL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		LLMTimeout:    os.Getenv("LLM_TIMEOUT"),
		LLMRetries:    envInt("LLM_RETRIES"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}
}

// Load builds the effective configuration: environment variables win over the
// optional JSON file at path, which wins over Defaults. The result is validated.
func Load(path string) (*Config, error) {
	file := Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		file = *loaded
	}

	env := FromEnv()
	merged := env.MergeWithDefaults(file)
	merged = merged.MergeWithDefaults(Defaults())

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.LLMRetries < 0 {
		return fmt.Errorf("config error: 'llm_retries' must be non-negative")
	}

	if _, ok := llm.ParseProvider(c.Provider); !ok {
		return fmt.Errorf("config error: unknown provider %q (want gemini, openai or none)", c.Provider)
	}
	switch c.ResolvedProvider() {
	case llm.ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config error: provider gemini requires GEMINI_API_KEY")
		}
	case llm.ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config error: provider openai requires OPENAI_API_KEY")
		}
	}

	if c.LLMTimeout != "" {
		d, err := time.ParseDuration(c.LLMTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'llm_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'llm_timeout' must be positive")
		}
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config error: 'log_format' must be text or json")
	}

	if c.StaticDir != "" {
		info, err := os.Stat(c.StaticDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: static directory not found: %s", c.StaticDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.OpenAIBaseURL == "" {
		result.OpenAIBaseURL = defaults.OpenAIBaseURL
	}
	if result.LLMTimeout == "" {
		result.LLMTimeout = defaults.LLMTimeout
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LLMRetries == 0 {
		result.LLMRetries = defaults.LLMRetries
	}

	return result
}

// ResolvedProvider returns the configured provider. When none is named, the
// provider whose API key is present is used, Gemini first.
func (c *Config) ResolvedProvider() llm.Provider {
	if strings.TrimSpace(c.Provider) != "" {
		p, _ := llm.ParseProvider(c.Provider)
		return p
	}
	switch {
	case c.GeminiAPIKey != "":
		return llm.ProviderGemini
	case c.OpenAIAPIKey != "":
		return llm.ProviderOpenAI
	default:
		return llm.ProviderNone
	}
}

// APIKey returns the key of the resolved provider.
func (c *Config) APIKey() string {
	switch c.ResolvedProvider() {
	case llm.ProviderGemini:
		return c.GeminiAPIKey
	case llm.ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return ""
	}
}

// Timeout returns LLMTimeout as a duration, or the default when unset or invalid.
func (c *Config) Timeout() time.Duration {
	if d, err := time.ParseDuration(c.LLMTimeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultLLMTimeout)
	return d
}

// LLMConfig returns the llm.Config for the resolved provider, or nil when the
// application runs offline.
func (c *Config) LLMConfig() *llm.Config {
	provider := c.ResolvedProvider()
	if provider == llm.ProviderNone {
		return nil
	}

	cfg := llm.ConfigFor(provider)
	if c.Model != "" {
		cfg = cfg.WithAllModels(c.Model)
	}
	if provider == llm.ProviderOpenAI {
		cfg.BaseURL = c.OpenAIBaseURL
	}
	return cfg
}

func envInt(key string) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return 0
}
