package llm

import (
	"context"
	"strings"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/types"

	"github.com/m-mizutani/goerr/v2"
)

// Sampling configuration is fixed and not user-configurable: creative but
// not random.
const (
	samplingTemperature = 0.8
	samplingTopP        = 0.9
	maxResponseTokens   = 1024
)

// New selects a text-generation backend by model name. Model names with a
// recognized hosted-provider prefix route to that provider's API and require
// a credential; everything else is sent to a local Ollama server.
func New(ctx context.Context, model types.ModelName, apiKey types.APIKey) (interfaces.TextGenerator, error) {
	name := string(model)
	if name == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "model name is empty")
	}

	switch {
	case strings.HasPrefix(name, "claude"):
		if apiKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption,
				"API key is required for Claude models (--api-key or GHROAST_API_KEY)")
		}
		return newAnthropicBackend(name, apiKey), nil

	case strings.HasPrefix(name, "gemini"):
		if apiKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption,
				"API key is required for Gemini models (--api-key or GHROAST_API_KEY)")
		}
		return newGeminiBackend(ctx, name, apiKey)

	default:
		return newOllamaBackend(name), nil
	}
}
