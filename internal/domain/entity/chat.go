// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatGreeting opens every chat transcript.
const ChatGreeting = "Hi, this is ai chat of mysavings. How can I help you?"

// ChatMessage is one line of the AI chat transcript.
type ChatMessage struct {
	ID        uuid.UUID
	Role      ChatRole
	Text      string
	CreatedAt time.Time
}

// NewChatMessage creates a new ChatMessage.
func NewChatMessage(role ChatRole, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
