package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ghroast/pkg/domain/types"
	"ghroast/pkg/infra"
	"ghroast/pkg/usecase"

	"github.com/m-mizutani/gt"
)

type generatorMock struct {
	generate func(ctx context.Context, system, prompt string) (string, error)
}

func (x *generatorMock) Generate(ctx context.Context, system, prompt string) (string, error) {
	return x.generate(ctx, system, prompt)
}

func TestGenerateRoast(t *testing.T) {
	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	t.Run("sends the persona and the composed prompt", func(t *testing.T) {
		var gotSystem, gotPrompt string
		mock := &generatorMock{
			generate: func(ctx context.Context, system, prompt string) (string, error) {
				gotSystem = system
				gotPrompt = prompt
				return "TRUTH SCORE: 42/100", nil
			},
		}

		uc := usecase.New(infra.New(infra.WithTextGenerator(mock)))
		text := gt.R1(uc.GenerateRoast(fixedClock(t, now), baseReport(), true)).NoError(t)

		gt.V(t, text).Equal("TRUTH SCORE: 42/100")
		gt.V(t, gotSystem).Equal(usecase.RoasterSystemPrompt)
		gt.S(t, gotPrompt).Contains("REPOSITORY: acme/demo")
		gt.S(t, gotPrompt).Contains("SPICY MODE ACTIVATED")
	})

	t.Run("backend errors propagate", func(t *testing.T) {
		mock := &generatorMock{
			generate: func(ctx context.Context, system, prompt string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		uc := usecase.New(infra.New(infra.WithTextGenerator(mock)))
		_, err := uc.GenerateRoast(fixedClock(t, now), baseReport(), false)
		gt.Error(t, err)
	})

	t.Run("missing backend is an option error", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.GenerateRoast(fixedClock(t, now), baseReport(), false)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
