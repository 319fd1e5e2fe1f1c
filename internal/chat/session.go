// Package chat owns the conversation state for a stockchat session: the
// ordered transcript and the one-request-at-a-time turn discipline.
package chat

import (
	"strings"

	"github.com/diogo/stockchat/internal/api"
	"github.com/diogo/stockchat/internal/models"
)

// Session holds the transcript and busy flag for one chat session.
// The transcript is append-only and always starts with the greeting.
// It lives only in memory; nothing is persisted.
//
// Session is not safe for concurrent use. Both the TUI and the synchronous
// Submit path drive it from a single goroutine.
type Session struct {
	client     api.QueryClientInterface
	transcript []models.Message
	busy       bool
}

// NewSession creates a session seeded with the fixed greeting message
func NewSession(client api.QueryClientInterface) *Session {
	return &Session{
		client: client,
		transcript: []models.Message{
			{Role: models.RoleAssistant, Content: models.Greeting},
		},
	}
}

// Begin starts a turn. It returns false without touching any state when
// text is blank after trimming or another request is already in flight.
// On acceptance it appends the user message exactly as typed and marks
// the session busy.
func (s *Session) Begin(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if s.busy {
		return false
	}

	s.transcript = append(s.transcript, models.Message{
		Role:    models.RoleUser,
		Content: text,
	})
	s.busy = true
	return true
}

// Finish resolves the current turn. Exactly one assistant message is
// appended per accepted submission: the remote reply on success, the fixed
// fallback text on any failure. The busy flag clears either way.
//
// A failure never propagates; the session keeps accepting input.
func (s *Session) Finish(reply string, err error) {
	if !s.busy {
		return
	}

	content := reply
	if err != nil || reply == "" {
		content = models.Fallback
	}

	s.transcript = append(s.transcript, models.Message{
		Role:    models.RoleAssistant,
		Content: content,
	})
	s.busy = false
}

// Submit runs a full synchronous turn: Begin, one remote query, Finish.
// It reports whether the submission was accepted. Turn failures are
// swallowed into the fallback message, so there is no error return.
func (s *Session) Submit(text string) bool {
	if !s.Begin(text) {
		return false
	}

	reply, err := s.client.Query(text)
	s.Finish(reply, err)
	return true
}

// Busy reports whether a request is in flight
func (s *Session) Busy() bool {
	return s.busy
}

// Len returns the number of messages in the transcript
func (s *Session) Len() int {
	return len(s.transcript)
}

// Messages returns the transcript oldest-first. The returned slice is a
// copy, so repeated calls without mutation yield identical views.
func (s *Session) Messages() []models.Message {
	out := make([]models.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Last returns the newest message in the transcript
func (s *Session) Last() models.Message {
	return s.transcript[len(s.transcript)-1]
}
