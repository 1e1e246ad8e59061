package deliberation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bridgecrew/internal/metrics"
)

// Gateway is the remote reasoning capability as the sequencer sees it:
// create-or-reuse an agent identity for a role, then run one turn against
// it. Implemented by internal/agent.
type Gateway interface {
	// Available reports whether the remote capability is configured and
	// reachable. When false the caller must not run the sequence at all.
	Available() bool
	EnsureAgent(ctx context.Context, role string) (string, error)
	RunTurn(ctx context.Context, agentID, prompt string) (string, error)
}

// StepError is the fail-fast outcome of a sequence: the role whose step did
// not reach a successful terminal state, and the status observed there.
type StepError struct {
	Role   string
	Status string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("agent '%s' did not complete (status=%s)", e.Role, e.Status)
}

func (e *StepError) Unwrap() error { return e.Err }

// Sequencer drives the fixed role order through the gateway, feeding each
// role the accumulated conversation. Steps never overlap: each prompt
// depends on every prior step's output.
type Sequencer struct {
	gateway Gateway
}

func NewSequencer(gateway Gateway) *Sequencer {
	return &Sequencer{gateway: gateway}
}

// Run executes one deliberation. On success the conversation covers every
// sequenced role exactly once with the target role last. On any step
// failure the partial conversation is discarded and a *StepError is
// returned; the caller must treat that as total unavailability and fall
// back. No retries.
func (s *Sequencer) Run(ctx context.Context, dctx Context) ([]Entry, *metrics.RunMetrics, error) {
	rm := &metrics.RunMetrics{Start: time.Now()}
	defer func() {
		rm.End = time.Now()
		rm.Finalize()
	}()

	sequence := BuildSequence(dctx.TargetRole)
	conversation := make([]Entry, 0, len(sequence))

	for _, role := range sequence {
		sm := metrics.StepMetrics{Role: role, Start: time.Now()}

		content, err := s.step(ctx, role, dctx, conversation)

		sm.End = time.Now()
		sm.Success = err == nil
		if err != nil {
			sm.Err = err.Error()
		}
		sm.Finalize()
		rm.Steps = append(rm.Steps, sm)

		if err != nil {
			return nil, rm, &StepError{Role: role, Status: statusOf(err), Err: err}
		}
		conversation = append(conversation, Entry{Role: role, Content: content})
	}

	rm.Succeeded = true
	return conversation, rm, nil
}

func (s *Sequencer) step(ctx context.Context, role string, dctx Context, prior []Entry) (string, error) {
	agentID, err := s.gateway.EnsureAgent(ctx, role)
	if err != nil {
		return "", fmt.Errorf("ensure agent: %w", err)
	}
	prompt := ComposePrompt(role, dctx, prior)
	content, err := s.gateway.RunTurn(ctx, agentID, prompt)
	if err != nil {
		return "", fmt.Errorf("run turn: %w", err)
	}
	return content, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timed_out"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "failed"
	}
}
