package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/application/metrics"
	"github.com/mysavings/backend/internal/domain/entity"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// CannedResponder answers from a fixed set of templates filled with ledger figures.
// It never fails and is used as the fallback for every other responder.
type CannedResponder struct {
	goals adapter.GoalSnapshotReader
}

// NewCannedResponder creates a CannedResponder. goals may be nil.
func NewCannedResponder(goals adapter.GoalSnapshotReader) *CannedResponder {
	return &CannedResponder{goals: goals}
}

// Reply implements adapter.ChatResponder.
func (r *CannedResponder) Reply(ctx context.Context, history []entity.ChatMessage) (string, error) {
	var goals []entity.Goal
	if r.goals != nil {
		goals = r.goals.ListGoals(ctx)
	}

	question := strings.ToLower(lastUserText(history))

	switch {
	case len(goals) == 0:
		return "You have no savings goals yet. Create your first goal and I can help you plan how much to put aside each month.", nil
	case strings.Contains(question, "progress") || strings.Contains(question, "how much"):
		return progressReply(goals), nil
	default:
		return planReply(goals), nil
	}
}

func progressReply(goals []entity.Goal) string {
	s := metrics.Summarize(goals)
	return fmt.Sprintf("You have saved %s of %s so far. Your overall progress is %d%%.",
		valueobject.FormatRupees(s.TotalSaved),
		valueobject.FormatRupees(s.TotalTarget),
		s.OverallProgress,
	)
}

// planReply suggests the monthly amount for the first goal that is not achieved yet.
func planReply(goals []entity.Goal) string {
	for i := range goals {
		g := &goals[i]
		if g.IsAchieved() {
			continue
		}
		return fmt.Sprintf("To reach %q you need %s more. Saving about %s a month gets you there in %d months.",
			g.Name,
			valueobject.FormatRupees(g.RemainingAmount()),
			valueobject.FormatRupees(g.SuggestedMonthly()),
			g.DurationMonths,
		)
	}
	return "All your goals are achieved. Great work! Set a new goal to keep the momentum going."
}

func lastUserText(history []entity.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == entity.ChatRoleUser {
			return history[i].Text
		}
	}
	return ""
}
