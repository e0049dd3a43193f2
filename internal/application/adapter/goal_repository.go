// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/mysavings/backend/internal/domain/entity"
)

// GoalRepository defines the persistence the ledger loads from at start and
// saves to after every mutation.
type GoalRepository interface {
	// LoadAll returns every goal in creation order with its entries in recording order.
	LoadAll(ctx context.Context) ([]*entity.Goal, error)

	// Create stores a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// AppendEntry stores entry and the goal's new saved amount as one atomic write.
	// goal is the state after the entry was recorded.
	AppendEntry(ctx context.Context, goal *entity.Goal, entry entity.SavingEntry) error
}
