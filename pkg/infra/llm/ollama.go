package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/types"

	"github.com/m-mizutani/goerr/v2"
)

const defaultOllamaEndpoint = "http://localhost:11434"

// ollamaBackend talks to a local Ollama server over its JSON chat API.
// There is no official Go SDK; the wire format is small enough to hold here.
type ollamaBackend struct {
	endpoint string
	model    string
	client   *http.Client
}

var _ interfaces.TextGenerator = (*ollamaBackend)(nil)

func newOllamaBackend(model string) *ollamaBackend {
	endpoint := os.Getenv("OLLAMA_HOST")
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}

	return &ollamaBackend{
		endpoint: endpoint,
		model:    model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (x *ollamaBackend) Generate(ctx context.Context, system, prompt string) (string, error) {
	req := ollamaChatRequest{
		Model: x.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Options: ollamaOptions{
			Temperature: samplingTemperature,
			TopP:        samplingTopP,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal ollama request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create ollama request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(httpReq)
	if err != nil {
		return "", goerr.Wrap(types.ErrBackendFailure,
			"ollama request failed, make sure Ollama is running: ollama serve",
			goerr.V("model", x.model), goerr.V("cause", err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", goerr.Wrap(types.ErrBackendFailure,
			"ollama returned an error, make sure the model is pulled: ollama pull "+x.model,
			goerr.V("status", resp.StatusCode), goerr.V("body", string(raw)))
	}

	var result ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", goerr.Wrap(err, "failed to decode ollama response")
	}

	return result.Message.Content, nil
}
