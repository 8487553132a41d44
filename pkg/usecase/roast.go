package usecase

import (
	"context"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/domain/types"
	"ghroast/pkg/utils/logging"

	"github.com/m-mizutani/goerr/v2"
)

// GenerateRoast composes the analysis prompt from the report and sends it to
// the configured text-generation backend. The evidence report is left
// untouched, so a caller can still fall back to QuickRoast when the backend
// fails.
func (x *UseCase) GenerateRoast(ctx context.Context, report *model.Report, spicy bool) (string, error) {
	generator := x.clients.TextGenerator()
	if generator == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "no text generation backend configured")
	}

	prompt := BuildRoastPrompt(ctx, report, spicy)
	logging.From(ctx).Debug("composed roast prompt",
		"bytes", len(prompt),
		"spicy", spicy,
		"claims", len(report.Claims),
	)

	text, err := generator.Generate(ctx, RoasterSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	return text, nil
}
