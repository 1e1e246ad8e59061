package shiplog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoEntriesNarrative is returned when there is nothing to recount.
const NoEntriesNarrative = "The ship's log holds no entries yet; the voyage has no story to tell."

// Narrate turns a snapshot of log entries into a short multi-paragraph
// prose summary of the voyage. The input is not modified.
func Narrate(entries []Entry) string {
	if len(entries) == 0 {
		return NoEntriesNarrative
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var paragraphs []string

	opening := fmt.Sprintf("The voyage log holds %d %s", len(sorted), pluralize(len(sorted), "entry", "entries"))
	if span := formatSpan(sorted[0].Timestamp, sorted[len(sorted)-1].Timestamp); span != "" {
		opening += " spanning " + span
	}
	paragraphs = append(paragraphs, opening+".")

	if reports := systemReports(sorted); len(reports) > 0 {
		paragraphs = append(paragraphs,
			fmt.Sprintf("Along the way the ship reported: %s.", strings.Join(reports, ", ")))
	}

	if hasType(sorted, TypeReflection) {
		paragraphs = append(paragraphs,
			"Between events, the crew kept a steady cadence of reflections.")
	}

	if latest, ok := latestVoice(sorted); ok {
		paragraphs = append(paragraphs,
			fmt.Sprintf("The last word belongs to %s: \"%s\"", latest.Author, latest.Transcript))
	}

	return strings.Join(paragraphs, "\n\n")
}

// formatSpan renders the elapsed duration between the first and last entry:
// hours and/or minutes, "moments" when sub-minute, empty when zero.
func formatSpan(first, last time.Time) string {
	elapsed := last.Sub(first)
	if elapsed <= 0 {
		return ""
	}
	if elapsed < time.Minute {
		return "moments"
	}
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, pluralize(hours, "hour", "hours")))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, pluralize(minutes, "minute", "minutes")))
	}
	return strings.Join(parts, " and ")
}

// systemReports collects the first sentence of up to three system entries.
func systemReports(sorted []Entry) []string {
	var reports []string
	for _, entry := range sorted {
		if entry.Type != TypeSystem {
			continue
		}
		reports = append(reports, firstSentence(entry.Transcript))
		if len(reports) == 3 {
			break
		}
	}
	return reports
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "."); idx >= 0 {
		return text[:idx]
	}
	return text
}

func hasType(entries []Entry, entryType string) bool {
	for _, entry := range entries {
		if entry.Type == entryType {
			return true
		}
	}
	return false
}

// latestVoice finds the most recent crew or reflection entry, the one whose
// transcript closes the narrative.
func latestVoice(sorted []Entry) (Entry, bool) {
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Type == TypeCrew || sorted[i].Type == TypeReflection {
			return sorted[i], true
		}
	}
	return Entry{}, false
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
