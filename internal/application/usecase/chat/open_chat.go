// Package chat contains the "Ask AI" use cases.
package chat

import (
	"context"

	"github.com/mysavings/backend/internal/application/chat"
	"github.com/mysavings/backend/internal/domain/entity"
)

// TranscriptOutput holds the conversation as it currently stands.
type TranscriptOutput struct {
	Open     bool
	Messages []entity.ChatMessage
}

// OpenChatInput represents the input for opening the chat.
type OpenChatInput struct{}

// OpenChatUseCase starts a new conversation.
type OpenChatUseCase struct {
	session *chat.Session
}

// NewOpenChatUseCase creates a new OpenChatUseCase instance.
func NewOpenChatUseCase(session *chat.Session) *OpenChatUseCase {
	return &OpenChatUseCase{session: session}
}

// Execute opens the chat with a fresh greeting.
func (uc *OpenChatUseCase) Execute(ctx context.Context, input OpenChatInput) (*TranscriptOutput, error) {
	return &TranscriptOutput{
		Open:     true,
		Messages: uc.session.Open(),
	}, nil
}
