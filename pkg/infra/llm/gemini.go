package llm

import (
	"context"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/types"

	"github.com/m-mizutani/goerr/v2"
	genai "google.golang.org/genai"
)

type geminiBackend struct {
	client *genai.Client
	model  string
}

var _ interfaces.TextGenerator = (*geminiBackend)(nil)

func newGeminiBackend(ctx context.Context, model string, apiKey types.APIKey) (*geminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  string(apiKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini client")
	}

	return &geminiBackend{client: client, model: model}, nil
}

func (x *geminiBackend) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := x.client.Models.GenerateContent(ctx, x.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			Temperature:       genai.Ptr[float32](samplingTemperature),
			TopP:              genai.Ptr[float32](samplingTopP),
		},
	)
	if err != nil {
		return "", goerr.Wrap(types.ErrBackendFailure, "gemini API call failed",
			goerr.V("model", x.model), goerr.V("cause", err.Error()))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", goerr.Wrap(types.ErrBackendFailure, "gemini returned no text content",
			goerr.V("model", x.model))
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
