package skill

import (
	"sync"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
)

// ResultStore is the single-slot holder for the most recent send
// outcome. It lives for the process lifetime and is never persisted.
// The mutex matters because the MCP server may host several sessions.
type ResultStore struct {
	mu   sync.RWMutex
	last *mailer.Outcome
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Set overwrites the slot with the latest outcome.
func (s *ResultStore) Set(outcome mailer.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &outcome
}

// Last returns a copy of the most recent outcome, or nil if nothing
// has been sent yet.
func (s *ResultStore) Last() *mailer.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	outcome := *s.last
	return &outcome
}
