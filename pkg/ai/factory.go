package ai

import (
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/gemini"
)

// DynamicConfig holds AI provider configuration with runtime getters so
// settings updates take effect without a restart.
type DynamicConfig struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config, resolved per call
	GetGeminiApiKey func() string
	GetGeminiApiURL func() string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewTextGenerator creates a TextGenerator based on the config.
// This is the factory function - switch AI provider by changing
// cfg.Provider.
func NewTextGenerator(cfg DynamicConfig) TextGenerator {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
	default:
		// Gemini serves both the explicit and the auto case; the key is
		// runtime-configurable, so its presence cannot be decided here.
		return gemini.NewGeminiServiceWithGetters(cfg.GetGeminiApiKey, cfg.GetGeminiApiURL)
	}
}
