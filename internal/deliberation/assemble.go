package deliberation

import (
	"errors"
	"strings"
)

// ErrEmptyConversation marks a contract violation: the sequencer's terminal
// guarantee makes an empty completed conversation unreachable.
var ErrEmptyConversation = errors.New("conversation was empty")

// Assemble converts a completed conversation into the visible result: the
// last entry is the transcript, and every entry contributes its non-empty
// lines (bullets stripped) to the reasoning trail, prefixed with the
// speaking role. Entry order, then line order, is preserved.
func Assemble(conversation []Entry) (Result, error) {
	if len(conversation) == 0 {
		return Result{}, ErrEmptyConversation
	}
	final := conversation[len(conversation)-1]

	var chain []string
	for _, entry := range conversation {
		prefix := titleCase(entry.Role) + ": "
		for _, raw := range strings.Split(entry.Content, "\n") {
			cleaned := strings.TrimSpace(raw)
			cleaned = strings.TrimLeft(cleaned, "-•·")
			cleaned = strings.TrimSpace(cleaned)
			if cleaned != "" {
				chain = append(chain, prefix+cleaned)
			}
		}
	}

	records := make([]Entry, len(conversation))
	copy(records, conversation)

	return Result{
		Transcript:     final.Content,
		ChainOfThought: chain,
		Provider:       ProviderAgents,
		Conversation:   records,
	}, nil
}
