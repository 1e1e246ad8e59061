package shiplog

import (
	"strings"
	"testing"
	"time"
)

func TestNarrateEmpty(t *testing.T) {
	if got := Narrate(nil); got != NoEntriesNarrative {
		t.Errorf("empty log narrative = %q", got)
	}
}

func TestNarrateSingleCrewEntry(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Type: TypeCrew, Author: "Cmdr. Ellis Shaw", Transcript: "Hold 47° NE.", Timestamp: base},
	}

	story := Narrate(entries)

	if !strings.HasPrefix(story, "The voyage log holds 1 entry.") {
		t.Errorf("opening paragraph wrong: %q", story)
	}
	if !strings.Contains(story, `The last word belongs to Cmdr. Ellis Shaw: "Hold 47° NE."`) {
		t.Errorf("story must close with the author's words: %q", story)
	}
	if strings.Contains(story, "reported") || strings.Contains(story, "reflections") {
		t.Errorf("no system or reflection paragraphs expected: %q", story)
	}
}

func TestNarrateSystemReportsCapAtThree(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Type: TypeSystem, Author: "ship", Transcript: "Voyage log opened. Extra detail.", Timestamp: base},
		{Type: TypeSystem, Author: "ship", Transcript: "Watch report one.", Timestamp: base.Add(time.Minute)},
		{Type: TypeSystem, Author: "ship", Transcript: "Watch report two.", Timestamp: base.Add(2 * time.Minute)},
		{Type: TypeSystem, Author: "ship", Transcript: "Watch report three.", Timestamp: base.Add(3 * time.Minute)},
	}

	story := Narrate(entries)

	if !strings.Contains(story, "Along the way the ship reported: Voyage log opened, Watch report one, Watch report two.") {
		t.Errorf("system reports must be the first sentences of at most three entries: %q", story)
	}
	if strings.Contains(story, "Extra detail") || strings.Contains(story, "Watch report three") {
		t.Errorf("reports beyond the cap or past the first sentence leaked: %q", story)
	}
}

func TestNarrateReflectionsAndSpan(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Type: TypeCrew, Author: "Shaw", Transcript: "Steady on.", Timestamp: base},
		{Type: TypeReflection, Author: "crew", Transcript: "Quiet watch.", Timestamp: base.Add(90 * time.Minute)},
	}

	story := Narrate(entries)

	if !strings.Contains(story, "spanning 1 hour and 30 minutes") {
		t.Errorf("span missing or wrong: %q", story)
	}
	if !strings.Contains(story, "Between events, the crew kept a steady cadence of reflections.") {
		t.Errorf("reflection paragraph missing: %q", story)
	}
	if !strings.Contains(story, `The last word belongs to crew: "Quiet watch."`) {
		t.Errorf("latest voice must be the reflection: %q", story)
	}
}

func TestNarrateOrdersByTimestamp(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Type: TypeCrew, Author: "late", Transcript: "Second word.", Timestamp: base.Add(time.Hour)},
		{Type: TypeCrew, Author: "early", Transcript: "First word.", Timestamp: base},
	}

	story := Narrate(entries)

	if !strings.Contains(story, `The last word belongs to late: "Second word."`) {
		t.Errorf("narration must follow timestamps, not input order: %q", story)
	}
	if entries[0].Author != "late" {
		t.Errorf("input slice must not be reordered")
	}
}

func TestFormatSpan(t *testing.T) {
	base := time.Now()
	cases := []struct {
		name string
		gap  time.Duration
		want string
	}{
		{"zero", 0, ""},
		{"sub-minute", 30 * time.Second, "moments"},
		{"minutes only", 5 * time.Minute, "5 minutes"},
		{"exact hours", 2 * time.Hour, "2 hours"},
		{"one of each", time.Hour + time.Minute, "1 hour and 1 minute"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatSpan(base, base.Add(tc.gap)); got != tc.want {
				t.Errorf("formatSpan(%v) = %q, want %q", tc.gap, got, tc.want)
			}
		})
	}
}
