package deliberation

import (
	"context"
	"testing"
)

func TestServiceFallsBackWhenUnavailable(t *testing.T) {
	gw := newFakeGateway()
	gw.available = false

	result, rm := NewService(gw).Deliberate(context.Background(), BuildContext(sampleInput()))

	if result.Provider != ProviderFallback {
		t.Errorf("provider = %q, want %q", result.Provider, ProviderFallback)
	}
	if len(result.ChainOfThought) != 3 {
		t.Errorf("fallback chain must have 3 lines, got %d", len(result.ChainOfThought))
	}
	if rm != nil {
		t.Errorf("skipped sequence must not produce run metrics")
	}
	if len(gw.turns) != 0 {
		t.Errorf("sequencer must not run when unavailable")
	}
}

func TestServiceFallsBackOnStepFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.failRole = "intel"

	result, rm := NewService(gw).Deliberate(context.Background(), BuildContext(sampleInput()))

	if result.Provider != ProviderFallback {
		t.Errorf("a failed sequence must fall back wholesale, provider = %q", result.Provider)
	}
	if rm == nil || rm.Succeeded {
		t.Errorf("run metrics should record the aborted attempt")
	}
}

func TestServiceRemotePath(t *testing.T) {
	gw := newFakeGateway()

	result, rm := NewService(gw).Deliberate(context.Background(), BuildContext(sampleInput()))

	if result.Provider != ProviderAgents {
		t.Errorf("provider = %q, want %q", result.Provider, ProviderAgents)
	}
	if len(result.Conversation) != 5 {
		t.Errorf("conversation length = %d, want 5", len(result.Conversation))
	}
	found := false
	for _, line := range result.ChainOfThought {
		if len(line) >= len("Navigator: ") && line[:len("Navigator: ")] == "Navigator: " {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("reasoning trail must include a Navigator-prefixed line: %v", result.ChainOfThought)
	}
	if rm == nil || !rm.Succeeded {
		t.Errorf("successful run must carry succeeded metrics")
	}
}
