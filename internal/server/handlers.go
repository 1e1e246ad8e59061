package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/shiplog"
)

type crewMemberPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Alliances []string `json:"alliances"`
}

type milestonePayload struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type routePayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cable string `json:"cable"`
}

type telemetryPayload struct {
	Progress         float64  `json:"progress"`
	HeadingDeg       *float64 `json:"heading_deg"`
	Drift            *float64 `json:"drift"`
	FuelPercentage   *float64 `json:"fuel_percentage"`
	StressPercentage *float64 `json:"stress_percentage"`
}

type crewMetricsPayload struct {
	Stress     *float64 `json:"stress"`
	Fatigue    *float64 `json:"fatigue"`
	Efficiency *float64 `json:"efficiency"`
}

type crewThoughtRequest struct {
	CrewMember     crewMemberPayload   `json:"crew_member"`
	Milestone      milestonePayload    `json:"milestone"`
	Route          routePayload        `json:"route"`
	ElapsedMinutes float64             `json:"elapsed_minutes"`
	Telemetry      telemetryPayload    `json:"telemetry"`
	CrewMetrics    *crewMetricsPayload `json:"crew_metrics"`
}

func (p crewThoughtRequest) validate() error {
	switch {
	case p.CrewMember.ID == "" || p.CrewMember.Name == "" || p.CrewMember.Role == "":
		return fmt.Errorf("crew_member requires id, name, and role")
	case p.Milestone.ID == "" || p.Milestone.Label == "":
		return fmt.Errorf("milestone requires id and label")
	case p.Route.ID == "" || p.Route.Name == "":
		return fmt.Errorf("route requires id and name")
	}
	return nil
}

type crewThoughtResponse struct {
	Transcript     string               `json:"transcript"`
	ChainOfThought []string             `json:"chain_of_thought"`
	Provider       string               `json:"provider"`
	Conversation   []deliberation.Entry `json:"conversation"`
	LogEntryID     string               `json:"log_entry_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", fmt.Sprintf("%s, %s", http.MethodGet, http.MethodHead))
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ready",
		"uptime_seconds": s.uptimeSeconds(),
	})
}

func (s *Server) handleCrewThought(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var payload crewThoughtRequest
	if !s.decodeBody(w, r, &payload) {
		return
	}
	if err := payload.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dctx := deliberation.BuildContext(deliberation.ContextInput{
		Crew: deliberation.CrewMember{
			ID:        payload.CrewMember.ID,
			Name:      payload.CrewMember.Name,
			Role:      payload.CrewMember.Role,
			Alliances: payload.CrewMember.Alliances,
		},
		Milestone: deliberation.Milestone(payload.Milestone),
		Route:     deliberation.Route(payload.Route),

		ElapsedMinutes: payload.ElapsedMinutes,
		Progress:       payload.Telemetry.Progress,
		HeadingDeg:     payload.Telemetry.HeadingDeg,
		Drift:          payload.Telemetry.Drift,
		FuelPercent:    payload.Telemetry.FuelPercentage,
		StressPercent:  payload.Telemetry.StressPercentage,
		Metrics:        metricsFromPayload(payload.CrewMetrics),
	})

	result, rm := s.service.Deliberate(r.Context(), dctx)

	// The result is final here, success or fallback; only now does the
	// log see it.
	stored := s.store.Append(shiplog.NewCrewEntry(dctx, result, rm))

	writeJSON(w, http.StatusOK, crewThoughtResponse{
		Transcript:     result.Transcript,
		ChainOfThought: result.ChainOfThought,
		Provider:       result.Provider,
		Conversation:   result.Conversation,
		LogEntryID:     stored.ID,
	})
}

func metricsFromPayload(p *crewMetricsPayload) *deliberation.Metrics {
	if p == nil {
		return nil
	}
	return &deliberation.Metrics{Stress: p.Stress, Fatigue: p.Fatigue, Efficiency: p.Efficiency}
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries := s.store.List()
		writeJSON(w, http.StatusOK, map[string]any{
			"count":   len(entries),
			"entries": entries,
		})
	case http.MethodPost:
		var entry shiplog.Entry
		if !s.decodeBody(w, r, &entry) {
			return
		}
		if entry.Author == "" && entry.Transcript == "" {
			writeError(w, http.StatusBadRequest, "entry requires at least an author or a transcript")
			return
		}
		stored := s.store.Append(entry)
		writeJSON(w, http.StatusCreated, stored)
	case http.MethodDelete:
		removed := s.store.Clear()
		writeJSON(w, http.StatusOK, map[string]any{
			"cleared": true,
			"removed": removed,
		})
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleLogExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	doc := shiplog.Export(s.store)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=ship-log-%s.json", doc.ExportedAt.Format("20060102-150405")))
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleLogStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	entries := s.store.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"story":       shiplog.Narrate(entries),
		"entry_count": len(entries),
	})
}

// decodeBody reads and unmarshals a JSON body under the configured size
// cap, answering 4xx on its own when the payload is unusable.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "empty body")
		return false
	}
	reader := http.MaxBytesReader(w, r.Body, s.settings.MaxBodyBytes)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload exceeds limit")
			return false
		}
		writeError(w, http.StatusBadRequest, "unable to read body")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
