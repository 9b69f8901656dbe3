package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestResolveDiscoversProvider(t *testing.T) {
	cfg, err := Config{}.resolve(env(map[string]string{
		"GEMINI_API_KEY": "g",
		"OPENAI_API_KEY": "o",
	}))
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider, "discovery order prefers openai over gemini")
	assert.Equal(t, "o", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, DefaultRetry(), cfg.Retry)
}

func TestResolveExplicitProvider(t *testing.T) {
	cfg, err := Config{Provider: ProviderGemini, Model: "gemini-pro"}.resolve(env(map[string]string{
		"ANTHROPIC_API_KEY": "a",
		"GEMINI_API_KEY":    "g",
	}))
	require.NoError(t, err)
	assert.Equal(t, "g", cfg.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Model)
}

func TestResolveErrors(t *testing.T) {
	_, err := Config{}.resolve(env(nil))
	assert.ErrorIs(t, err, ErrNoProvider)

	_, err = Config{Provider: ProviderAnthropic}.resolve(env(nil))
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")

	_, err = Config{Provider: "bard"}.resolve(env(nil))
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestMockNeedsNoKey(t *testing.T) {
	cfg, err := Config{Provider: ProviderMock}.resolve(env(nil))
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, cfg.Provider)
}
