// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/mysavings/backend/internal/domain/entity"
)

// ChatResponder produces the assistant reply to the latest user message.
type ChatResponder interface {
	// Reply returns the text of the reply. history includes the new message.
	Reply(ctx context.Context, history []entity.ChatMessage) (string, error)
}

// GoalSnapshotReader gives read access to the ledger for collaborators such
// as chat responders and the reminder dispatcher.
type GoalSnapshotReader interface {
	ListGoals(ctx context.Context) []entity.Goal
}
