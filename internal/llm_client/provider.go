package llm_client

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotInitialized = errors.New("llm provider not initialized")

type Config struct {
	Backend    string
	Model      string
	OllamaHost string
}

// TurnRequest is one conversational turn: the prompt to answer plus the
// per-agent configuration to answer it with.
type TurnRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature *float32
}

type Provider interface {
	Name() string
	DefaultModel() string
	AllowedModelOrDefault(model string) string
	Generate(ctx context.Context, req TurnRequest) (string, error)
}

// New builds the provider selected by cfg.Backend (gemini by default).
// Errors here mean the remote capability is unreachable or misconfigured;
// callers treat that as unavailability, not as a fatal condition.
func New(cfg Config) (Provider, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = "gemini"
	}
	switch backend {
	case "gemini":
		p := &geminiProvider{}
		if err := p.init(cfg); err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		p := &ollamaProvider{}
		if err := p.init(cfg); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM backend: %s", backend)
	}
}
