package deliberation

import (
	"fmt"
	"strings"

	"bridgecrew/internal/telemetry"
)

// CrewMember identifies who must ultimately speak.
type CrewMember struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Alliances []string `json:"alliances,omitempty"`
}

type Milestone struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Route struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cable string `json:"cable"`
}

// Telemetry carries the formatted labels consumed by prompt composition;
// raw numbers never travel past BuildContext.
type Telemetry struct {
	HeadingLabel string   `json:"heading_label"`
	DriftLabel   string   `json:"drift_label"`
	FuelLabel    string   `json:"fuel_label,omitempty"`
	Stress       *float64 `json:"stress,omitempty"`
}

type Metrics struct {
	Stress     *float64 `json:"stress,omitempty"`
	Fatigue    *float64 `json:"fatigue,omitempty"`
	Efficiency *float64 `json:"efficiency,omitempty"`
}

// Context is the normalized snapshot of one request. It is built once and
// never mutated; every later stage reads from it.
type Context struct {
	Crew            CrewMember
	Milestone       Milestone
	Route           Route
	ElapsedMinutes  float64
	ProgressPercent float64
	Telemetry       Telemetry
	Metrics         *Metrics
	TargetRole      string
}

// ContextInput is the raw material for BuildContext: identities plus
// unformatted telemetry numbers.
type ContextInput struct {
	Crew           CrewMember
	Milestone      Milestone
	Route          Route
	ElapsedMinutes float64
	Progress       float64 // 0..1
	HeadingDeg     *float64
	Drift          *float64
	FuelPercent    *float64
	StressPercent  *float64
	Metrics        *Metrics
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// BuildContext normalizes one request into an immutable Context: progress
// clamped to [0,1] and scaled to percent, elapsed time clamped to zero,
// telemetry delegated to the formatters. Pure transform, no I/O.
func BuildContext(in ContextInput) Context {
	var fuelLabel string
	if in.FuelPercent != nil {
		fuelLabel = fmt.Sprintf("%.1f%% fuel", *in.FuelPercent)
	}
	elapsed := in.ElapsedMinutes
	if elapsed < 0 {
		elapsed = 0
	}
	return Context{
		Crew:            in.Crew,
		Milestone:       in.Milestone,
		Route:           in.Route,
		ElapsedMinutes:  elapsed,
		ProgressPercent: clamp(in.Progress, 0, 1) * 100,
		Telemetry: Telemetry{
			HeadingLabel: telemetry.FormatHeading(in.HeadingDeg),
			DriftLabel:   telemetry.FormatDrift(in.Drift),
			FuelLabel:    fuelLabel,
			Stress:       in.StressPercent,
		},
		Metrics:    in.Metrics,
		TargetRole: strings.ToLower(strings.TrimSpace(in.Crew.Role)),
	}
}
