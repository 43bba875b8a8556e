// Package chat orchestrates a single inbound message: record it in the
// session, try the remote completion, and mask any completion failure
// behind a classified fallback reply.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/solacebot/solace/internal/completion"
	"github.com/solacebot/solace/internal/fallback"
	"github.com/solacebot/solace/internal/intent"
	"github.com/solacebot/solace/internal/session"
)

// Service handles chat messages end to end.
type Service struct {
	store    *session.Store
	client   *completion.Client
	fallback *fallback.Generator
}

// Opts holds Service dependencies. All three are required.
type Opts struct {
	Store    *session.Store
	Client   *completion.Client
	Fallback *fallback.Generator
}

// NewService creates a Service.
func NewService(opts Opts) (*Service, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("chat: store is required")
	}
	if opts.Client == nil {
		return nil, fmt.Errorf("chat: completion client is required")
	}
	if opts.Fallback == nil {
		return nil, fmt.Errorf("chat: fallback generator is required")
	}
	return &Service{store: opts.Store, client: opts.Client, fallback: opts.Fallback}, nil
}

// ResolveToken returns the token unchanged or mints a fresh one.
func (s *Service) ResolveToken(token string) string {
	return s.store.Resolve(token)
}

// Respond records the user turn, attempts the remote completion, and on
// any failure substitutes a fallback reply. The fallback path never
// touches the session store, so a degraded session holds only system
// and user turns.
func (s *Service) Respond(ctx context.Context, token, message string) string {
	s.store.RecordUserTurn(token, message)

	reply, err := s.client.Complete(ctx, s.store.Snapshot(token))
	if err != nil {
		s.logFailure(token, err)
		return s.fallback.Reply(intent.Classify(message))
	}

	s.store.RecordAssistantTurn(token, reply)
	return reply
}

// logFailure records why the completion path degraded. Users never see
// these details; they get a fallback reply instead.
func (s *Service) logFailure(token string, err error) {
	var upstream *completion.UpstreamError
	switch {
	case errors.Is(err, completion.ErrNoCredential):
		log.Printf("chat: session %s: no credential, using fallback", token)
	case errors.As(err, &upstream):
		log.Printf("chat: session %s: upstream status %d: %s", token, upstream.Status, upstream.Body)
	case errors.Is(err, completion.ErrMalformedReply):
		log.Printf("chat: session %s: malformed completion reply: %v", token, err)
	default:
		log.Printf("chat: session %s: completion failed: %v", token, err)
	}
}
