package deliberation

import "testing"

func fptr(v float64) *float64 { return &v }

func sampleInput() ContextInput {
	return ContextInput{
		Crew:      CrewMember{ID: "crew-1", Name: "Cmdr. Ellis Shaw", Role: "Captain"},
		Milestone: Milestone{ID: "m-1", Label: "Midpoint Crossing", Description: "Deepest leg of the corridor"},
		Route:     Route{ID: "r-1", Name: "Transatlantic Relay", Cable: "TAT-14"},

		ElapsedMinutes: 42,
		Progress:       0.5,
		HeadingDeg:     fptr(47),
		Drift:          fptr(-2),
	}
}

func TestBuildContextNormalizes(t *testing.T) {
	in := sampleInput()
	in.FuelPercent = fptr(81.25)

	ctx := BuildContext(in)

	if ctx.ProgressPercent != 50 {
		t.Errorf("expected progress 50%%, got %v", ctx.ProgressPercent)
	}
	if ctx.Telemetry.HeadingLabel != "47° NE" {
		t.Errorf("heading label = %q", ctx.Telemetry.HeadingLabel)
	}
	if ctx.Telemetry.DriftLabel != "2 pt port" {
		t.Errorf("drift label = %q", ctx.Telemetry.DriftLabel)
	}
	if ctx.Telemetry.FuelLabel != "81.2% fuel" {
		t.Errorf("fuel label = %q", ctx.Telemetry.FuelLabel)
	}
	if ctx.TargetRole != "captain" {
		t.Errorf("target role should be the lowercased crew role, got %q", ctx.TargetRole)
	}
}

func TestBuildContextClamps(t *testing.T) {
	testCases := []struct {
		name            string
		progress        float64
		elapsed         float64
		expectedPercent float64
		expectedElapsed float64
	}{
		{name: "Progress above one", progress: 1.7, elapsed: 10, expectedPercent: 100, expectedElapsed: 10},
		{name: "Progress below zero", progress: -0.3, elapsed: 10, expectedPercent: 0, expectedElapsed: 10},
		{name: "Negative elapsed time", progress: 0.25, elapsed: -5, expectedPercent: 25, expectedElapsed: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleInput()
			in.Progress = tc.progress
			in.ElapsedMinutes = tc.elapsed

			ctx := BuildContext(in)

			if ctx.ProgressPercent != tc.expectedPercent {
				t.Errorf("progress percent = %v, want %v", ctx.ProgressPercent, tc.expectedPercent)
			}
			if ctx.ElapsedMinutes != tc.expectedElapsed {
				t.Errorf("elapsed = %v, want %v", ctx.ElapsedMinutes, tc.expectedElapsed)
			}
		})
	}
}

func TestBuildContextOmitsAbsentFuel(t *testing.T) {
	ctx := BuildContext(sampleInput())
	if ctx.Telemetry.FuelLabel != "" {
		t.Errorf("expected no fuel label, got %q", ctx.Telemetry.FuelLabel)
	}
}
