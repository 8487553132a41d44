package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ghroast/pkg/domain/types"
	"ghroast/pkg/infra/llm"

	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("empty model name fails", func(t *testing.T) {
		_, err := llm.New(ctx, "", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("claude prefix requires an API key", func(t *testing.T) {
		_, err := llm.New(ctx, "claude-3-5-haiku-20241022", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("claude prefix with key builds a backend", func(t *testing.T) {
		backend := gt.R1(llm.New(ctx, "claude-3-5-haiku-20241022", "sk-test")).NoError(t)
		gt.V(t, backend).NotNil()
	})

	t.Run("gemini prefix requires an API key", func(t *testing.T) {
		_, err := llm.New(ctx, "gemini-2.0-flash", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("anything else routes to ollama without a credential", func(t *testing.T) {
		backend := gt.R1(llm.New(ctx, "mistral", "")).NoError(t)
		gt.V(t, backend).NotNil()
	})
}

func TestOllamaGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("sends chat request and returns the message content", func(t *testing.T) {
		var got struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Stream  bool `json:"stream"`
			Options struct {
				Temperature float64 `json:"temperature"`
				TopP        float64 `json:"top_p"`
			} `json:"options"`
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/api/chat")
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message": {"role": "assistant", "content": "nice roast"}}`))
		}))
		defer srv.Close()

		t.Setenv("OLLAMA_HOST", srv.URL)

		backend := gt.R1(llm.New(ctx, "mistral", "")).NoError(t)
		text := gt.R1(backend.Generate(ctx, "be witty", "roast this repo")).NoError(t)

		gt.V(t, text).Equal("nice roast")
		gt.V(t, got.Model).Equal("mistral")
		gt.False(t, got.Stream)
		gt.A(t, got.Messages).Length(2)
		gt.V(t, got.Messages[0].Role).Equal("system")
		gt.V(t, got.Messages[0].Content).Equal("be witty")
		gt.V(t, got.Messages[1].Role).Equal("user")
		gt.V(t, got.Options.Temperature).Equal(0.8)
		gt.V(t, got.Options.TopP).Equal(0.9)
	})

	t.Run("non-200 response is a backend failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "model not found"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		t.Setenv("OLLAMA_HOST", srv.URL)

		backend := gt.R1(llm.New(ctx, "missing-model", "")).NoError(t)
		_, err := backend.Generate(ctx, "sys", "prompt")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBackendFailure))
	})

	t.Run("unreachable server is a backend failure", func(t *testing.T) {
		t.Setenv("OLLAMA_HOST", "http://127.0.0.1:1")

		backend := gt.R1(llm.New(ctx, "mistral", "")).NoError(t)
		_, err := backend.Generate(ctx, "sys", "prompt")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBackendFailure))
	})
}
