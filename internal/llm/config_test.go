package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierLite))
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-1.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, DefaultSystemInstruction, config.SystemInstruction)
}

func TestDefaultOpenAIConfig(t *testing.T) {
	config := DefaultOpenAIConfig()

	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, "gpt-4o", config.GetModel(TierStandard))
	assert.InDelta(t, 0.3, config.Temperature, 0.0001)
}

func TestConfigFor(t *testing.T) {
	assert.Equal(t, ProviderOpenAI, ConfigFor(ProviderOpenAI).Provider)
	assert.Equal(t, ProviderGemini, ConfigFor(ProviderGemini).Provider)
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier falls back to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	original := DefaultGeminiConfig()
	modified := original.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-1.5-pro", original.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", modified.GetModel(TierAdvanced))
	assert.Equal(t, original.Temperature, modified.Temperature)
}

func TestWithAllModels(t *testing.T) {
	config := DefaultOpenAIConfig().WithAllModels("gpt-test")

	assert.Equal(t, "gpt-test", config.GetModel(TierLite))
	assert.Equal(t, "gpt-test", config.GetModel(TierStandard))
	assert.Equal(t, "gpt-test", config.GetModel(TierAdvanced))
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input string
		want  Provider
		ok    bool
	}{
		{"gemini", ProviderGemini, true},
		{" OpenAI ", ProviderOpenAI, true},
		{"", ProviderNone, true},
		{"none", ProviderNone, true},
		{"anthropic", Provider("anthropic"), false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseProvider(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
