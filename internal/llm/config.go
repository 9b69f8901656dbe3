package llm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Supported provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// ErrNoProvider is returned by Resolve when no provider is named and no API
// key is present in the environment.
var ErrNoProvider = errors.New("no LLM provider configured")

// Config selects and configures one provider.
type Config struct {
	Provider string
	Model    string
	APIKey   string

	// BaseURL overrides the provider endpoint. OpenRouter defaults to
	// https://openrouter.ai/api/v1.
	BaseURL string

	Retry RetryConfig
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetry is three attempts with exponential backoff from one second.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// keyEnv names the API key variable per provider. Discovery follows this
// order when no provider is configured.
var keyEnv = []struct{ provider, env string }{
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp",
}

// Resolve fills in what the config leaves blank from the environment:
// the provider (first API key found), its API key and its default model.
func (c Config) Resolve() (Config, error) {
	return c.resolve(os.Getenv)
}

func (c Config) resolve(getenv func(string) string) (Config, error) {
	if c.Provider == "" {
		for _, k := range keyEnv {
			if getenv(k.env) != "" {
				c.Provider = k.provider
				break
			}
		}
		if c.Provider == "" {
			return c, ErrNoProvider
		}
	}

	if c.APIKey == "" {
		for _, k := range keyEnv {
			if k.provider == c.Provider {
				c.APIKey = getenv(k.env)
			}
		}
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry = DefaultRetry()
	}
	return c, c.Validate()
}

// Validate checks the provider name and that it has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%s provider requires %s", c.Provider, envFor(c.Provider))
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}

func envFor(provider string) string {
	for _, k := range keyEnv {
		if k.provider == provider {
			return k.env
		}
	}
	return ""
}

// modelAliases maps short names to provider model IDs. Unknown names are
// passed through unchanged.
var modelAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.0-pro",
}

func resolveModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}
