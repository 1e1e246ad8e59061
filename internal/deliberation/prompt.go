package deliberation

import (
	"fmt"
	"strings"

	"bridgecrew/internal/telemetry"
)

// Entry is one turn of a deliberation: which role spoke and what it said.
// Entry order is transcript order and is preserved exactly.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// titleCase uppercases the first letter of a role key for display
// ("navigator" -> "Navigator").
func titleCase(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

const genericTemplate = "Summarise the situation in two bullet points and close with a directive sentence" +
	" that references the present heading."

// ComposePrompt builds the prompt for one role: a situation summary, the
// prior inputs so far, then the role's template. The target role gets a
// persona directive addressing the crew member by name instead of its own
// template, so the final turn speaks as that person.
func ComposePrompt(role string, ctx Context, prior []Entry) string {
	summaryLines := []string{
		fmt.Sprintf("Mission: %s (%s).", ctx.Route.Name, ctx.Route.Cable),
		fmt.Sprintf("Milestone: %s — %s", ctx.Milestone.Label, ctx.Milestone.Description),
		fmt.Sprintf("Elapsed: %.1f min · Progress %.0f%% complete", ctx.ElapsedMinutes, ctx.ProgressPercent),
		fmt.Sprintf("Heading %s with %s drift", ctx.Telemetry.HeadingLabel, ctx.Telemetry.DriftLabel),
	}
	if ctx.Telemetry.FuelLabel != "" {
		summaryLines = append(summaryLines, fmt.Sprintf("Fuel reserves %s", ctx.Telemetry.FuelLabel))
	}
	if detail := metricsLine(ctx.Metrics); detail != "" {
		summaryLines = append(summaryLines, detail)
	}

	var conversation string
	if len(prior) > 0 {
		lines := make([]string, 0, len(prior))
		for _, entry := range prior {
			lines = append(lines, fmt.Sprintf("%s: %s", titleCase(entry.Role), entry.Content))
		}
		conversation = "\nPrior inputs:\n" + strings.Join(lines, "\n") + "\n"
	} else {
		conversation = "\nNo prior agent inputs.\n"
	}

	template := genericTemplate
	if def, ok := Definitions[role]; ok {
		template = def.PromptTemplate
	}
	if role == ctx.TargetRole {
		template = fmt.Sprintf("Speak as %s (%s). ", ctx.Crew.Name, ctx.Crew.Role) +
			"Provide two crisp bullets describing your reasoning and finish with a directive" +
			" sentence for the crew that cites the heading to steer."
	}

	return strings.Join(summaryLines, "\n") + "\n" + conversation + "\n" + template
}

// metricsLine joins whichever crew metrics are present with commas; absent
// fields are omitted and an all-absent set yields no line at all.
func metricsLine(m *Metrics) string {
	if m == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	if label := telemetry.FormatEfficiency(m.Efficiency); label != "" {
		parts = append(parts, label)
	}
	if m.Stress != nil {
		parts = append(parts, fmt.Sprintf("Stress %.0f%%", *m.Stress))
	}
	if m.Fatigue != nil {
		parts = append(parts, fmt.Sprintf("Fatigue %.0f%%", *m.Fatigue))
	}
	return strings.Join(parts, ", ")
}
