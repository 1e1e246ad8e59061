package deliberation

import (
	"strings"
	"testing"
)

func TestFallbackShape(t *testing.T) {
	result := Fallback(BuildContext(sampleInput()))

	if result.Provider != ProviderFallback {
		t.Errorf("provider = %q, want %q", result.Provider, ProviderFallback)
	}
	if len(result.ChainOfThought) != 3 {
		t.Fatalf("reasoning chain must have exactly 3 lines, got %d", len(result.ChainOfThought))
	}
	if want := "Navigator notes heading 47° NE with 2 pt port."; result.ChainOfThought[0] != want {
		t.Errorf("chain[0] = %q, want %q", result.ChainOfThought[0], want)
	}
	if !strings.Contains(result.ChainOfThought[1], "Midpoint Crossing") {
		t.Errorf("chain[1] must reference the milestone label, got %q", result.ChainOfThought[1])
	}
}

func TestFallbackTranscriptVoicesTargetCrewMember(t *testing.T) {
	result := Fallback(BuildContext(sampleInput()))

	if !strings.HasPrefix(result.Transcript, "Cmdr. Ellis Shaw: Maintain 47° ne") {
		t.Errorf("transcript = %q", result.Transcript)
	}
	if !strings.Contains(result.Transcript, "hold the line through midpoint crossing") {
		t.Errorf("transcript must cite the milestone, got %q", result.Transcript)
	}
	if !strings.Contains(result.Transcript, "Report if drift grows beyond safe margins.") {
		t.Errorf("transcript missing the drift warning, got %q", result.Transcript)
	}
	if len(result.Conversation) != 1 || result.Conversation[0].Role != "captain" {
		t.Errorf("fallback conversation should carry one target entry, got %v", result.Conversation)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	ctx := BuildContext(sampleInput())
	a := Fallback(ctx)
	b := Fallback(ctx)
	if a.Transcript != b.Transcript || a.ChainOfThought[2] != b.ChainOfThought[2] {
		t.Errorf("fallback must be deterministic for the same context")
	}
}
