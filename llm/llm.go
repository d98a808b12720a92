// Package llm is the thin client around the hosted text-generation
// APIs: one prompt in, one raw text completion out. No retries, no
// streaming; an empty completion is a valid "no usable content" result.
package llm

import (
	"context"
	"fmt"
)

// Completer sends a prompt to a hosted model and returns the raw text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New creates a Completer for the given provider. model may be empty,
// in which case a provider default is used.
func New(provider, apiKey, model string) (Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("model API key not configured")
	}

	switch provider {
	case "cohere":
		return newCohereCompleter(apiKey, model), nil
	case "gemini":
		return newGeminiCompleter(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q (valid: cohere, gemini)", provider)
	}
}
