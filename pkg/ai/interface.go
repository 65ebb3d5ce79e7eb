package ai

import "context"

// TextGenerator is the interface for text-generation providers.
// Implement this interface to add new AI providers (Gemini, Ollama,
// OpenAI, etc.).
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
