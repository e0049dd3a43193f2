package chat

import (
	"context"

	"github.com/mysavings/backend/internal/application/chat"
)

// DismissChatInput represents the input for closing the chat.
type DismissChatInput struct{}

// DismissChatUseCase closes the chat and drops pending replies.
type DismissChatUseCase struct {
	session *chat.Session
}

// NewDismissChatUseCase creates a new DismissChatUseCase instance.
func NewDismissChatUseCase(session *chat.Session) *DismissChatUseCase {
	return &DismissChatUseCase{session: session}
}

// Execute performs the dismissal.
func (uc *DismissChatUseCase) Execute(ctx context.Context, input DismissChatInput) error {
	uc.session.Dismiss()
	return nil
}
