package llm

import (
	"context"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/types"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/m-mizutani/goerr/v2"
)

type anthropicBackend struct {
	client anthropic.Client
	model  string
}

var _ interfaces.TextGenerator = (*anthropicBackend)(nil)

func newAnthropicBackend(model string, apiKey types.APIKey) *anthropicBackend {
	return &anthropicBackend{
		client: anthropic.NewClient(option.WithAPIKey(string(apiKey))),
		model:  model,
	}
}

func (x *anthropicBackend) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := x.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(x.model),
		MaxTokens:   maxResponseTokens,
		Temperature: anthropic.Float(samplingTemperature),
		TopP:        anthropic.Float(samplingTopP),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", goerr.Wrap(types.ErrBackendFailure, "anthropic API call failed",
			goerr.V("model", x.model), goerr.V("cause", err.Error()))
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	if text == "" {
		return "", goerr.Wrap(types.ErrBackendFailure, "anthropic returned no text content",
			goerr.V("model", x.model))
	}

	return text, nil
}
