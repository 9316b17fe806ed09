package engine

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// LLM wraps the go-kit completion client with fence stripping and call counters.
// One instance is built in main and shared by everything that talks to the model.
type LLM struct {
	client *llm.Client
}

// NewLLM builds the completion client. Gemini is reached through its
// OpenAI-compatible endpoint, so any OpenAI-shaped base URL works here.
func NewLLM(cfg Config) *LLM {
	return &LLM{
		client: llm.NewClient(cfg.LLMAPIBase, cfg.GoogleAPIKey, cfg.LLMModel,
			llm.WithMaxTokens(cfg.LLMMaxTokens),
			llm.WithTemperature(cfg.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		),
	}
}

// Complete sends one blocking completion call and returns the fence-stripped text.
func (l *LLM) Complete(ctx context.Context, prompt string) (string, error) {
	IncrLLMCall()
	resp, err := l.client.Complete(ctx, "", prompt)
	if err != nil {
		IncrLLMError()
		return "", err
	}
	return stripFences(resp), nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
