package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted by MATHTOWER_LLM_PROVIDER.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one LLM provider.
type Config struct {
	Provider string        `env:"MATHTOWER_LLM_PROVIDER" envDefault:"anthropic"`
	Timeout  time.Duration `env:"MATHTOWER_LLM_TIMEOUT"  envDefault:"30s"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string `env:"MATHTOWER_ANTHROPIC_API_KEY"`
	Model  string `env:"MATHTOWER_ANTHROPIC_MODEL"   envDefault:"claude-haiku"`
}

// OpenAIConfig holds OpenAI settings. BaseURL points the client at any
// OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string `env:"MATHTOWER_OPENAI_API_KEY"`
	Model   string `env:"MATHTOWER_OPENAI_MODEL"    envDefault:"gpt-4o-mini"`
	BaseURL string `env:"MATHTOWER_OPENAI_BASE_URL"`
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey string `env:"MATHTOWER_GEMINI_API_KEY"`
	Model  string `env:"MATHTOWER_GEMINI_MODEL"   envDefault:"gemini-flash"`
}

// OpenRouterConfig holds OpenRouter settings.
type OpenRouterConfig struct {
	APIKey  string `env:"MATHTOWER_OPENROUTER_API_KEY"`
	Model   string `env:"MATHTOWER_OPENROUTER_MODEL"    envDefault:"google/gemini-2.0-flash-exp"`
	BaseURL string `env:"MATHTOWER_OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"MATHTOWER_LLM_RETRY_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"MATHTOWER_LLM_RETRY_WAIT"     envDefault:"1s"`
	MaxWait     time.Duration `env:"MATHTOWER_LLM_RETRY_MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MATHTOWER_LLM_RETRY_FACTOR"   envDefault:"2"`
}

// DefaultConfig returns the configuration with every variable unset.
func DefaultConfig() Config {
	var cfg Config
	// Parsing into a zero Config with an empty environment only applies
	// envDefault tags and cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse llm env: %w", err)
	}
	return cfg, nil
}

// Configured reports whether the selected provider can be built.
func (c Config) Configured() bool {
	return c.Validate() == nil
}

// DiscoverConfig returns a Config for the first vendor key found among the
// standard variables, checked in the order Gemini, OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	vendors := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range vendors {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Resolve loads the MATHTOWER_ configuration and falls back to
// DiscoverConfig when it names no usable provider.
func Resolve() (Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, err
	}
	if cfg.Configured() {
		return cfg, nil
	}
	if found, ok := DiscoverConfig(); ok {
		return found, nil
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, name string
	switch c.Provider {
	case ProviderAnthropic:
		key, name = c.Anthropic.APIKey, "MATHTOWER_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, name = c.OpenAI.APIKey, "MATHTOWER_OPENAI_API_KEY"
	case ProviderGemini:
		key, name = c.Gemini.APIKey, "MATHTOWER_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, name = c.OpenRouter.APIKey, "MATHTOWER_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", name, c.Provider)
	}
	return nil
}
