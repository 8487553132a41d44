package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RequestID   string
	GitHubToken string
	APIKey      string
	ModelName   string
)

// NewRequestID returns a new random request ID for a single invocation
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x APIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIKey) String() string {
	return "***********"
}
