package ai

import (
	"context"
)

// GenerationConfig carries the sampling parameters forwarded to the model.
type GenerationConfig struct {
	Model           string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// TextGenerator defines the contract for talking to a text-completion model.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.)
// and for injecting fakes in tests.
type TextGenerator interface {
	// Generate sends prompt to the model and returns the raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
