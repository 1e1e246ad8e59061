package deliberation

import (
	"context"

	"bridgecrew/internal/logger"
	"bridgecrew/internal/metrics"
)

// Service is the one entry point callers use: it owns the
// availability/fallback branch so every caller always receives a usable
// result, never a remote-service error.
type Service struct {
	gateway   Gateway
	sequencer *Sequencer
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway, sequencer: NewSequencer(gateway)}
}

// Deliberate runs the full protocol for one context. The remote path is
// taken only when the gateway is available; a step failure aborts the whole
// run and substitutes the deterministic fallback, tagged accordingly. Run
// metrics are returned for the remote path (nil for the skipped one).
func (s *Service) Deliberate(ctx context.Context, dctx Context) (Result, *metrics.RunMetrics) {
	if s.gateway == nil || !s.gateway.Available() {
		return Fallback(dctx), nil
	}

	conversation, rm, err := s.sequencer.Run(ctx, dctx)
	if err != nil {
		logger.Log.Printf("[Deliberation] sequence aborted for %s/%s: %v",
			dctx.Route.ID, dctx.TargetRole, err)
		return Fallback(dctx), rm
	}

	result, err := Assemble(conversation)
	if err != nil {
		// Unreachable given the sequencer's terminal guarantee.
		logger.Log.Printf("[Deliberation] contract violation: %v", err)
		return Fallback(dctx), rm
	}
	return result, rm
}
