package chat

import (
	"context"

	"github.com/mysavings/backend/internal/application/chat"
)

// GetTranscriptInput represents the input for reading the conversation.
type GetTranscriptInput struct{}

// GetTranscriptUseCase returns the current conversation.
type GetTranscriptUseCase struct {
	session *chat.Session
}

// NewGetTranscriptUseCase creates a new GetTranscriptUseCase instance.
func NewGetTranscriptUseCase(session *chat.Session) *GetTranscriptUseCase {
	return &GetTranscriptUseCase{session: session}
}

// Execute performs the read.
func (uc *GetTranscriptUseCase) Execute(ctx context.Context, input GetTranscriptInput) (*TranscriptOutput, error) {
	return &TranscriptOutput{
		Open:     uc.session.IsOpen(),
		Messages: uc.session.Transcript(),
	}, nil
}
