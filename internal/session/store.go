// Package session keeps per-session conversation history in memory.
// Sessions are keyed by an opaque token carried in a cookie; history
// lives for the process lifetime with no eviction.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Roles for conversation turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SystemPrompt is the fixed instruction pinned at index 0 of every
// session. It survives history trimming.
const SystemPrompt = "You are a supportive mental health chatbot. Respond with empathy and care. " +
	"Provide helpful suggestions but make it clear you are not a replacement for professional help. " +
	"Keep responses concise and focused on the user's well-being."

// MaxTurns caps a session's history. When exceeded the list is trimmed
// to the system turn plus the most recent MaxTurns-1 turns.
const MaxTurns = 10

// Turn is one message in a conversation, tagged with its speaker role.
// Turns are immutable and append-only.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store maps session tokens to ordered turn lists. Safe for concurrent
// use across tokens; same-token requests are serialized only per
// operation, not per request (lost updates between operations are an
// accepted risk).
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]Turn)}
}

// Resolve returns token unchanged when non-empty, else mints a fresh
// globally-unique token.
func (s *Store) Resolve(token string) string {
	if token != "" {
		return token
	}
	return uuid.NewString()
}

// RecordUserTurn appends a user turn to the session, creating it with
// the system instruction first if needed, then enforces the turn cap.
// The cap runs exactly once per inbound message, here, before the
// remote completion call.
func (s *Store) RecordUserTurn(token, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.sessions[token]
	if !ok {
		turns = []Turn{{Role: RoleSystem, Content: SystemPrompt}}
	}
	turns = append(turns, Turn{Role: RoleUser, Content: text})

	if len(turns) > MaxTurns {
		trimmed := make([]Turn, 0, MaxTurns)
		trimmed = append(trimmed, turns[0])
		trimmed = append(trimmed, turns[len(turns)-(MaxTurns-1):]...)
		turns = trimmed
	}
	s.sessions[token] = turns
}

// RecordAssistantTurn appends an assistant turn. No trim here; the cap
// is enforced on the next inbound user message.
func (s *Store) RecordAssistantTurn(token, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = append(s.sessions[token], Turn{Role: RoleAssistant, Content: text})
}

// Snapshot returns a copy of the session's current turns, oldest first.
// The copy is the prompt payload for the completion client.
func (s *Store) Snapshot(token string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.sessions[token]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// Len reports the session's current turn count.
func (s *Store) Len(token string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[token])
}
