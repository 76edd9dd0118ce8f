// Package session holds per-session conversation state: an ordered
// append-only log of user/assistant turns, scoped to the process lifetime.
package session

import (
	"sync"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one turn of the conversation.
type Entry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the explicit conversation state threaded through the router.
// Entries are only ever appended, never removed or reordered.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	entries []Entry
}

// Record appends the completed query/response pair as two entries, user
// first. Appending both under one lock keeps the log's pairing invariant
// even when sessions are shared across requests.
func (s *Session) Record(query, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries,
		Entry{Role: RoleUser, Content: query},
		Entry{Role: RoleAssistant, Content: answer},
	)
}

// History returns a copy of the ordered conversation log.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries the log holds.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
