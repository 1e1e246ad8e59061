package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bridgecrew/internal/llm_client"
)

// turnTimeout bounds one remote turn. The wire protocol has no terminal
// deadline of its own, so the gateway imposes this one; a turn that
// outlives it is a step failure.
const turnTimeout = 45 * time.Second

const noDirective = "No directive provided."

// Gateway implements deliberation.Gateway on top of an llm_client provider
// and the agent-identity registry. A nil provider means the remote
// capability was never configured; Available reports that.
type Gateway struct {
	provider llm_client.Provider
	registry *Registry
}

func NewGateway(provider llm_client.Provider, registry *Registry) *Gateway {
	return &Gateway{provider: provider, registry: registry}
}

func (g *Gateway) Available() bool {
	return g != nil && g.provider != nil
}

// EnsureAgent returns the cached identity for role, creating it on first
// use. Creation is idempotent per role for the process lifetime.
func (g *Gateway) EnsureAgent(_ context.Context, role string) (string, error) {
	if !g.Available() {
		return "", llm_client.ErrNotInitialized
	}
	return g.registry.Ensure(role, g.provider).ID, nil
}

// RunTurn submits one prompt to the identified agent and waits, bounded by
// turnTimeout, for its terminal output. Whitespace is trimmed and an empty
// result normalizes to a placeholder so a completed turn always carries
// text.
func (g *Gateway) RunTurn(ctx context.Context, agentID, prompt string) (string, error) {
	if !g.Available() {
		return "", llm_client.ErrNotInitialized
	}
	session, ok := g.registry.Lookup(agentID)
	if !ok {
		return "", fmt.Errorf("unknown agent id %q", agentID)
	}

	turnCtx, cancel := context.WithTimeout(ctx, turnTimeout)
	defer cancel()

	text, err := g.provider.Generate(turnCtx, llm_client.TurnRequest{
		Model:       session.Model,
		System:      session.Instructions,
		Prompt:      prompt,
		Temperature: session.Temperature,
	})
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		text = noDirective
	}
	return text, nil
}
