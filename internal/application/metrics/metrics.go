// Package metrics derives portfolio figures from a ledger snapshot.
// Everything here is a pure function: no state, safe to recompute on every read.
package metrics

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mysavings/backend/internal/domain/entity"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// NoGoalsInsight is shown when the ledger is empty.
const NoGoalsInsight = "You have no active goals yet"

// GoalProgress is one row of the analytics "Goals Progress" list.
type GoalProgress struct {
	GoalID   uuid.UUID
	Name     string
	Saved    int64
	Target   int64
	Progress int
	Achieved bool
}

// Summary holds every derived figure of the analytics screen.
type Summary struct {
	TotalSaved      int64
	TotalTarget     int64
	OverallProgress int
	GoalCount       int
	AchievedCount   int
	Insights        string
	Goals           []GoalProgress
}

// TotalSaved sums the saved amount across goals.
func TotalSaved(goals []entity.Goal) int64 {
	var total int64
	for i := range goals {
		total = addCapped(total, goals[i].SavedAmount)
	}
	return total
}

// addCapped adds two non-negative amounts, saturating at math.MaxInt64.
func addCapped(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// OverallProgress averages the per-goal progress percentages, rounded half-up.
// No goals yields 0.
func OverallProgress(goals []entity.Goal) int {
	if len(goals) == 0 {
		return 0
	}

	sum := decimal.Zero
	for i := range goals {
		sum = sum.Add(decimal.NewFromInt(int64(goals[i].Progress())))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(goals))))
	return int(valueobject.RoundHalfUp(avg))
}

// InsightsText picks the insight line for the given number of goals.
func InsightsText(goalCount int) string {
	switch {
	case goalCount <= 0:
		return NoGoalsInsight
	case goalCount == 1:
		return "You have 1 active goal"
	default:
		return fmt.Sprintf("You have %d active goals", goalCount)
	}
}

// Summarize computes the full analytics summary.
func Summarize(goals []entity.Goal) Summary {
	s := Summary{
		TotalSaved:      TotalSaved(goals),
		OverallProgress: OverallProgress(goals),
		GoalCount:       len(goals),
		Insights:        InsightsText(len(goals)),
		Goals:           make([]GoalProgress, 0, len(goals)),
	}

	for i := range goals {
		g := &goals[i]
		s.TotalTarget = addCapped(s.TotalTarget, g.TargetAmount)
		if g.IsAchieved() {
			s.AchievedCount++
		}
		s.Goals = append(s.Goals, GoalProgress{
			GoalID:   g.ID,
			Name:     g.Name,
			Saved:    g.SavedAmount,
			Target:   g.TargetAmount,
			Progress: g.Progress(),
			Achieved: g.IsAchieved(),
		})
	}

	return s
}
