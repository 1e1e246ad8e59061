// Package shiplog is the bounded, append-only record of crew-thought
// results and system events, plus its narrative synthesis.
package shiplog

import (
	"time"

	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/metrics"
)

const (
	TypeSystem     = "system"
	TypeCrew       = "crew"
	TypeReflection = "reflection"
)

// Recognized metadata keys. Metadata is an open map, but these are the
// keys the crew-thought flow writes and consumers may rely on.
const (
	MetaCrewID          = "crew_id"
	MetaCrewRole        = "crew_role"
	MetaMilestoneID     = "milestone_id"
	MetaMilestoneLabel  = "milestone_label"
	MetaRouteID         = "route_id"
	MetaRouteName       = "route_name"
	MetaElapsedMinutes  = "elapsed_minutes"
	MetaProgressPercent = "progress_percent"
	MetaTelemetry       = "telemetry"
	MetaMetrics         = "metrics"
	MetaRunMetrics      = "run_metrics"
	MetaSource          = "source"
)

// Entry is one ship log record. Never mutated after creation; id and
// timestamp are assigned on append when the caller omits them.
type Entry struct {
	ID             string               `json:"id"`
	Timestamp      time.Time            `json:"timestamp"`
	Type           string               `json:"type"`
	Author         string               `json:"author"`
	Role           string               `json:"role,omitempty"`
	Transcript     string               `json:"transcript"`
	ChainOfThought []string             `json:"chain_of_thought,omitempty"`
	Provider       string               `json:"provider,omitempty"`
	Metadata       map[string]any       `json:"metadata,omitempty"`
	Conversation   []deliberation.Entry `json:"conversation,omitempty"`
}

// NewCrewEntry builds the log entry for one finished deliberation. The
// result is already finalized (success or fallback) before this runs.
func NewCrewEntry(dctx deliberation.Context, result deliberation.Result, rm *metrics.RunMetrics) Entry {
	metadata := map[string]any{
		MetaCrewID:          dctx.Crew.ID,
		MetaCrewRole:        dctx.Crew.Role,
		MetaMilestoneID:     dctx.Milestone.ID,
		MetaMilestoneLabel:  dctx.Milestone.Label,
		MetaRouteID:         dctx.Route.ID,
		MetaRouteName:       dctx.Route.Name,
		MetaElapsedMinutes:  dctx.ElapsedMinutes,
		MetaProgressPercent: dctx.ProgressPercent,
		MetaTelemetry:       dctx.Telemetry,
		MetaSource:          "crew-thought",
	}
	if dctx.Metrics != nil {
		metadata[MetaMetrics] = dctx.Metrics
	}
	if rm != nil {
		metadata[MetaRunMetrics] = rm
	}
	return Entry{
		Type:           TypeCrew,
		Author:         dctx.Crew.Name,
		Role:           dctx.Crew.Role,
		Transcript:     result.Transcript,
		ChainOfThought: result.ChainOfThought,
		Provider:       result.Provider,
		Metadata:       metadata,
		Conversation:   result.Conversation,
	}
}
