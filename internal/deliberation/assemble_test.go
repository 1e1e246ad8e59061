package deliberation

import (
	"errors"
	"testing"
)

func TestAssembleEmptyConversation(t *testing.T) {
	_, err := Assemble(nil)
	if !errors.Is(err, ErrEmptyConversation) {
		t.Fatalf("expected ErrEmptyConversation, got %v", err)
	}
}

func TestAssemble(t *testing.T) {
	conversation := []Entry{
		{Role: "navigator", Content: "- Steer east\n• Watch the shelf\n\n"},
		{Role: "captain", Content: "Hold 47° NE."},
	}

	result, err := Assemble(conversation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Transcript != "Hold 47° NE." {
		t.Errorf("transcript must be the last entry's content, got %q", result.Transcript)
	}
	if result.Provider != ProviderAgents {
		t.Errorf("provider = %q", result.Provider)
	}
	expected := []string{
		"Navigator: Steer east",
		"Navigator: Watch the shelf",
		"Captain: Hold 47° NE.",
	}
	if len(result.ChainOfThought) != len(expected) {
		t.Fatalf("chain = %v, want %v", result.ChainOfThought, expected)
	}
	for i, want := range expected {
		if result.ChainOfThought[i] != want {
			t.Errorf("chain[%d] = %q, want %q", i, result.ChainOfThought[i], want)
		}
	}
	if len(result.Conversation) != 2 {
		t.Errorf("conversation records must pass through unchanged")
	}
}

func TestAssembleDoesNotAliasInput(t *testing.T) {
	conversation := []Entry{{Role: "captain", Content: "Hold."}}
	result, err := Assemble(conversation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conversation[0].Content = "mutated"
	if result.Conversation[0].Content != "Hold." {
		t.Errorf("assembled records must be a copy of the input")
	}
}
