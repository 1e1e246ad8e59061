package display

import (
	"fmt"
	"strings"

	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/shiplog"
)

const maxTranscriptPreview = 100

// FormatResult renders one deliberation result for the console.
func FormatResult(result deliberation.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Crew deliberation (provider: %s)\n", result.Provider))
	sb.WriteString("--------------------------------------------------\n")
	if len(result.ChainOfThought) > 0 {
		sb.WriteString("Reasoning trail:\n")
		for _, line := range result.ChainOfThought {
			sb.WriteString(fmt.Sprintf("  - %s\n", line))
		}
	}
	sb.WriteString("Directive:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", result.Transcript))
	sb.WriteString("--------------------------------------------------")
	return sb.String()
}

// FormatEntries renders a log snapshot, newest last, transcripts truncated.
func FormatEntries(entries []shiplog.Entry) string {
	if len(entries) == 0 {
		return "Ship log is empty."
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ship log (%d entries):\n", len(entries)))
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("  [%s] %s %s: %s\n",
			entry.Timestamp.Format("15:04:05"), entry.Type, entry.Author,
			truncate(entry.Transcript)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) > maxTranscriptPreview {
		return s[:maxTranscriptPreview] + "..."
	}
	return s
}
