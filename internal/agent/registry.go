// Package agent bridges the deliberation sequencer to the remote reasoning
// capability: it owns the per-role agent identities and executes single
// conversational turns against the configured provider.
package agent

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/llm_client"
)

// Session is one agent identity: a process-local handle binding a role's
// model, instructions, and temperature to the provider. Created once per
// role and reused for the process lifetime.
type Session struct {
	ID           string
	Role         string
	Name         string
	Model        string
	Instructions string
	Temperature  *float32
}

// Registry is the agent-identity cache. The only mutation is insertion on
// cache miss; nothing is ever evicted or refreshed.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	byID     map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		byID:     make(map[string]*Session),
	}
}

// Ensure returns the cached identity for role, minting one from the role's
// definition on first use. Unknown roles get the provider default model and
// no special instructions.
func (r *Registry) Ensure(role string, provider llm_client.Provider) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[role]; ok {
		return session
	}

	session := &Session{
		ID:    uuid.New().String()[:8],
		Role:  role,
		Name:  fmt.Sprintf("%s agent", role),
		Model: provider.DefaultModel(),
	}
	if def, ok := deliberation.Definitions[role]; ok {
		session.Name = def.Name
		session.Instructions = def.Instructions
		session.Temperature = def.Temperature
		session.Model = provider.AllowedModelOrDefault(def.Model)
	}

	r.sessions[role] = session
	r.byID[session.ID] = session
	return session
}

// Lookup resolves an agent id handed out by Ensure.
func (r *Registry) Lookup(agentID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.byID[agentID]
	return session, ok
}

// Len reports how many identities have been minted so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
