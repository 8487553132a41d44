package config

import (
	"context"
	"log/slog"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/types"
	"ghroast/pkg/infra/llm"

	"github.com/urfave/cli/v3"
)

type Backend struct {
	model  types.ModelName
	apiKey types.APIKey `masq:"secret"`
}

func (x *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Text generation model (mistral, llama3, claude-*, gemini-*)",
			Category:    "Backend",
			Value:       "mistral",
			Destination: (*string)(&x.model),
			Sources:     cli.EnvVars("GHROAST_MODEL"),
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "API key for hosted models (Claude, Gemini)",
			Category:    "Backend",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("GHROAST_API_KEY"),
		},
	}
}

func (x Backend) New(ctx context.Context) (interfaces.TextGenerator, error) {
	return llm.New(ctx, x.model, x.apiKey)
}

func (x Backend) Model() types.ModelName {
	return x.model
}

func (x Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("model", string(x.model)),
		slog.Int("apiKey.len", len(x.apiKey)),
	)
}
