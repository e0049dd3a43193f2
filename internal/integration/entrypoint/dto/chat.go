package dto

import (
	"time"

	"github.com/mysavings/backend/internal/domain/entity"
)

// SendChatMessageRequest represents a message typed into the chat.
type SendChatMessageRequest struct {
	Text string `json:"text"`
}

// ChatMessageResponse represents one chat message.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptResponse represents the whole conversation.
type TranscriptResponse struct {
	Open     bool                  `json:"open"`
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a ChatMessage to its DTO.
func ToChatMessageResponse(m entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID.String(),
		Role:      string(m.Role),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

// ToTranscriptResponse converts a transcript to its DTO.
func ToTranscriptResponse(open bool, messages []entity.ChatMessage) TranscriptResponse {
	out := TranscriptResponse{
		Open:     open,
		Messages: make([]ChatMessageResponse, len(messages)),
	}
	for i, m := range messages {
		out.Messages[i] = ToChatMessageResponse(m)
	}
	return out
}
