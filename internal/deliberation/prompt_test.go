package deliberation

import (
	"strings"
	"testing"
)

func TestComposePromptSummaryBlock(t *testing.T) {
	ctx := BuildContext(sampleInput())

	prompt := ComposePrompt("navigator", ctx, nil)

	for _, want := range []string{
		"Mission: Transatlantic Relay (TAT-14).",
		"Milestone: Midpoint Crossing — Deepest leg of the corridor",
		"Elapsed: 42.0 min · Progress 50% complete",
		"Heading 47° NE with 2 pt port drift",
		"\nNo prior agent inputs.\n",
		Definitions["navigator"].PromptTemplate,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Fuel reserves") {
		t.Errorf("prompt should omit fuel line when fuel is absent")
	}
}

func TestComposePromptPriorInputs(t *testing.T) {
	ctx := BuildContext(sampleInput())
	prior := []Entry{
		{Role: "navigator", Content: "Hold the line."},
		{Role: "intel", Content: "Corridor clear."},
	}

	prompt := ComposePrompt("engineer", ctx, prior)

	if !strings.Contains(prompt, "Prior inputs:\nNavigator: Hold the line.\nIntel: Corridor clear.") {
		t.Errorf("prior inputs block malformed:\n%s", prompt)
	}
	if strings.Contains(prompt, "No prior agent inputs") {
		t.Errorf("no-prior line must be absent when entries exist")
	}
}

func TestComposePromptTargetOverride(t *testing.T) {
	ctx := BuildContext(sampleInput())

	prompt := ComposePrompt("captain", ctx, nil)

	if !strings.Contains(prompt, "Speak as Cmdr. Ellis Shaw (Captain).") {
		t.Errorf("target role must get the persona directive:\n%s", prompt)
	}
	if strings.Contains(prompt, Definitions["captain"].PromptTemplate) {
		t.Errorf("target role must not use its own fixed template")
	}
}

func TestComposePromptUnknownRoleUsesGenericTemplate(t *testing.T) {
	ctx := BuildContext(sampleInput())

	prompt := ComposePrompt("quartermaster", ctx, nil)

	if !strings.Contains(prompt, genericTemplate) {
		t.Errorf("unknown non-target role should fall back to the generic template")
	}
}

func TestComposePromptMetricsLine(t *testing.T) {
	testCases := []struct {
		name     string
		metrics  *Metrics
		expected string
		absent   string
	}{
		{
			name:     "All metrics present",
			metrics:  &Metrics{Stress: fptr(60), Fatigue: fptr(30), Efficiency: fptr(0.9)},
			expected: "Efficiency 90%, Stress 60%, Fatigue 30%",
		},
		{
			name:     "Partial metrics omit absent fields",
			metrics:  &Metrics{Stress: fptr(60)},
			expected: "Stress 60%",
			absent:   "Fatigue",
		},
		{
			name:    "Empty metrics add no line",
			metrics: &Metrics{},
			absent:  "Stress",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleInput()
			in.Metrics = tc.metrics
			prompt := ComposePrompt("intel", BuildContext(in), nil)

			if tc.expected != "" && !strings.Contains(prompt, tc.expected) {
				t.Errorf("prompt missing metrics detail %q:\n%s", tc.expected, prompt)
			}
			if tc.absent != "" && strings.Contains(prompt, tc.absent) {
				t.Errorf("prompt should not mention %q:\n%s", tc.absent, prompt)
			}
		})
	}
}
