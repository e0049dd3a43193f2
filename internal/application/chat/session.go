// Package chat runs the "Ask AI" conversation.
//
// Sending a message appends it at once and schedules the assistant reply after
// a fixed delay on its own goroutine, so ledger operations are never blocked.
// Each Open starts a new epoch; Dismiss cancels it and any reply belonging to
// an older epoch is dropped, which gives at-most-once delivery into a live
// transcript.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// DefaultReplyDelay mirrors the pause before the assistant answers.
const DefaultReplyDelay = 1500 * time.Millisecond

// Session is the single chat surface of the app.
type Session struct {
	mu         sync.Mutex
	open       bool
	epoch      uint64
	cancel     context.CancelFunc
	epochCtx   context.Context
	transcript []entity.ChatMessage

	responder adapter.ChatResponder
	fallback  adapter.ChatResponder
	delay     time.Duration
	pending   sync.WaitGroup
}

// NewSession creates a closed session. fallback answers when responder fails
// and may be the same value as responder.
func NewSession(responder, fallback adapter.ChatResponder, delay time.Duration) *Session {
	if delay < 0 {
		delay = 0
	}
	return &Session{
		responder: responder,
		fallback:  fallback,
		delay:     delay,
	}
}

// Open starts a fresh conversation with the greeting, discarding any
// conversation that was still open.
func (s *Session) Open() []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()
	s.epoch++
	s.open = true
	s.epochCtx, s.cancel = context.WithCancel(context.Background())
	s.transcript = []entity.ChatMessage{entity.NewChatMessage(entity.ChatRoleAssistant, entity.ChatGreeting)}

	return s.snapshotLocked()
}

// Send appends the user message and schedules the reply.
func (s *Session) Send(ctx context.Context, text string) (entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.ChatMessage{}, domainerror.NewChatError(
			domainerror.ErrCodeEmptyChatMessage,
			"message cannot be empty",
			domainerror.ErrEmptyChatMessage,
		)
	}

	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return entity.ChatMessage{}, domainerror.NewChatError(
			domainerror.ErrCodeChatNotOpen,
			"open the chat before sending messages",
			domainerror.ErrChatNotOpen,
		)
	}

	msg := entity.NewChatMessage(entity.ChatRoleUser, text)
	s.transcript = append(s.transcript, msg)
	epoch := s.epoch
	epochCtx := s.epochCtx
	history := s.snapshotLocked()
	s.pending.Add(1)
	s.mu.Unlock()

	go s.reply(epochCtx, epoch, history)

	return msg, nil
}

// Dismiss closes the chat. Replies that have not been delivered yet are dropped.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

// IsOpen reports whether the chat is currently shown.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Transcript returns a copy of the current conversation.
func (s *Session) Transcript() []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until every scheduled reply has been delivered or dropped.
func (s *Session) Wait() {
	s.pending.Wait()
}

func (s *Session) reply(ctx context.Context, epoch uint64, history []entity.ChatMessage) {
	defer s.pending.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	text, err := s.responder.Reply(ctx, history)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("Chat responder failed, using fallback reply", "error", err)
		text, err = s.fallback.Reply(ctx, history)
		if err != nil {
			slog.Error("Chat fallback reply failed", "error", err)
			return
		}
	}

	s.deliver(epoch, text)
}

func (s *Session) deliver(epoch uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || s.epoch != epoch {
		slog.Debug("Dropping chat reply for a dismissed conversation", "epoch", epoch)
		return
	}
	s.transcript = append(s.transcript, entity.NewChatMessage(entity.ChatRoleAssistant, text))
}

func (s *Session) closeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.open = false
}

func (s *Session) snapshotLocked() []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}
