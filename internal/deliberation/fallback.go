package deliberation

import (
	"fmt"
	"strings"
)

const (
	ProviderAgents   = "agents-backend"
	ProviderFallback = "fallback"
)

// Result is the externally visible outcome of one deliberation, whichever
// path produced it.
type Result struct {
	Transcript     string
	ChainOfThought []string
	Provider       string
	Conversation   []Entry
}

// Fallback synthesizes a deterministic substitute result from the context
// alone: a three-line reasoning chain and a transcript voiced as the target
// crew member. Used whenever the remote capability is unavailable or a
// sequence step fails.
func Fallback(ctx Context) Result {
	heading := ctx.Telemetry.HeadingLabel
	drift := ctx.Telemetry.DriftLabel
	chain := []string{
		fmt.Sprintf("Navigator notes heading %s with %s.", heading, drift),
		fmt.Sprintf("Intel confirms corridor risks near %s.", ctx.Milestone.Label),
		"Engineering keeps propulsion steady for cardinal adjustments.",
	}
	transcript := fmt.Sprintf(
		"%s: Maintain %s and hold the line through %s. Report if drift grows beyond safe margins.",
		ctx.Crew.Name, strings.ToLower(heading), strings.ToLower(ctx.Milestone.Label),
	)
	return Result{
		Transcript:     transcript,
		ChainOfThought: chain,
		Provider:       ProviderFallback,
		Conversation:   []Entry{{Role: ctx.TargetRole, Content: transcript}},
	}
}
