package chat

import (
	"context"

	"github.com/mysavings/backend/internal/application/chat"
	"github.com/mysavings/backend/internal/domain/entity"
)

// SendMessageInput represents a message typed by the user.
type SendMessageInput struct {
	Text string
}

// SendMessageOutput returns the stored user message. The reply arrives later.
type SendMessageOutput struct {
	Message entity.ChatMessage
}

// SendMessageUseCase appends a message and schedules the assistant reply.
type SendMessageUseCase struct {
	session *chat.Session
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(session *chat.Session) *SendMessageUseCase {
	return &SendMessageUseCase{session: session}
}

// Execute performs the send.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	msg, err := uc.session.Send(ctx, input.Text)
	if err != nil {
		return nil, err
	}
	return &SendMessageOutput{Message: msg}, nil
}
