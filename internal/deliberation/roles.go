package deliberation

// RoleDefinition is the immutable configuration of one fixed reasoning
// role: who the agent is, which model it defaults to, and the prompt
// template it answers with.
type RoleDefinition struct {
	Role           string
	Name           string
	Instructions   string
	PromptTemplate string
	Model          string
	Temperature    *float32
}

const DefaultModel = "gemini-2.0-flash"

// SupportSequence is the fixed evaluation order. The target role is always
// resequenced to speak last (see BuildSequence).
var SupportSequence = []string{"navigator", "intel", "engineer", "operations", "captain"}

var Definitions = map[string]RoleDefinition{
	"navigator": {
		Role:  "navigator",
		Name:  "Navigation Watch Officer",
		Model: DefaultModel,
		Instructions: "You are the navigation liaison for a submarine threading subsea cable corridors." +
			" Emphasise headings, cardinal directions, depth bands, and cross-track drift when advising the bridge." +
			" Provide concise bullet points that describe how to steer relative to the plotted line.",
		PromptTemplate: "Detail two bullet points covering helm adjustments and hazard avoidance using cardinal language." +
			" Finish with one sentence that issues a navigation recommendation.",
	},
	"intel": {
		Role:  "intel",
		Name:  "Intelligence Analyst",
		Model: DefaultModel,
		Instructions: "You fuse sensor, satellite, and maritime traffic intelligence." +
			" Speak to how contacts or hydrography influence safe headings in cardinal terms." +
			" Reference coordination with other teams.",
		PromptTemplate: "Provide two short bullets describing the sensor picture and recommended observation arcs," +
			" then close with a sentence that briefs the bridge on monitoring priorities.",
	},
	"engineer": {
		Role:  "engineer",
		Name:  "Engineering Watch Supervisor",
		Model: DefaultModel,
		Instructions: "You monitor propulsion, ballast, and reactor loads." +
			" Note how engineering settings support the requested heading and drift corrections." +
			" Coordinate with navigation and operations for stability.",
		PromptTemplate: "Share two bullets on machinery posture and ballast trim," +
			" followed by one sentence that confirms propulsion readiness for the specified course.",
	},
	"operations": {
		Role:  "operations",
		Name:  "Operations Coordinator",
		Model: DefaultModel,
		Instructions: "You synchronise crew rotations and readiness." +
			" Emphasise how communications with the bridge and engineering keep the vessel on the plotted line.",
		PromptTemplate: "Produce two bullets highlighting crew coordination tied to the current heading and drift," +
			" and finish with a sentence assigning next check-in responsibilities.",
	},
	"captain": {
		Role:  "captain",
		Name:  "Commanding Officer",
		Model: DefaultModel,
		Instructions: "You arbitrate the final manoeuvre." +
			" Synthesize prior officer inputs and judge risk relative to the cardinal course.",
		PromptTemplate: "Deliver two short assessments covering risk and mission priority," +
			" then issue a single-sentence command decision that names the heading to hold.",
	},
}

// BuildSequence orders the support roles and appends the target role so it
// speaks last and exactly once. An unknown target still closes the sequence
// after all five fixed roles.
func BuildSequence(targetRole string) []string {
	sequence := make([]string, 0, len(SupportSequence)+1)
	for _, role := range SupportSequence {
		if role != targetRole {
			sequence = append(sequence, role)
		}
	}
	return append(sequence, targetRole)
}
