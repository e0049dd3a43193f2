package metrics

import (
	"math"
	"testing"

	"github.com/mysavings/backend/internal/domain/entity"
)

func goalWith(target, saved int64) entity.Goal {
	g := entity.NewGoal("goal", target, 12, "", entity.ReminderFirstOfMonth)
	if saved > 0 {
		g.Record(entity.NewSavingEntry(saved, "", ""))
	}
	return *g
}

func TestTotalSaved(t *testing.T) {
	if got := TotalSaved(nil); got != 0 {
		t.Errorf("expected 0 for no goals, got %d", got)
	}

	goals := []entity.Goal{goalWith(1000, 250), goalWith(5000, 4000), goalWith(10, 0)}
	if got := TotalSaved(goals); got != 4250 {
		t.Errorf("expected 4250, got %d", got)
	}
}

func TestTotalsSaturate(t *testing.T) {
	goals := []entity.Goal{goalWith(math.MaxInt64, math.MaxInt64), goalWith(math.MaxInt64, 5)}

	if got := TotalSaved(goals); got != math.MaxInt64 {
		t.Errorf("expected total saved to stop at MaxInt64, got %d", got)
	}

	s := Summarize(goals)
	if s.TotalSaved != math.MaxInt64 || s.TotalTarget != math.MaxInt64 {
		t.Errorf("expected saturated totals, got saved=%d target=%d", s.TotalSaved, s.TotalTarget)
	}
}

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name     string
		goals    []entity.Goal
		expected int
	}{
		{name: "no goals", goals: []entity.Goal{}, expected: 0},
		{name: "nil goals", goals: nil, expected: 0},
		{name: "fifty and hundred", goals: []entity.Goal{goalWith(100, 50), goalWith(200, 200)}, expected: 75},
		{name: "average rounds half up", goals: []entity.Goal{goalWith(100, 0), goalWith(100, 1)}, expected: 1},
		{name: "average rounds down below half", goals: []entity.Goal{goalWith(100, 0), goalWith(100, 0), goalWith(100, 1)}, expected: 0},
		{name: "over saving counts unclamped", goals: []entity.Goal{goalWith(100, 200), goalWith(100, 0)}, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallProgress(tt.goals); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestInsightsText(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{count: 0, expected: NoGoalsInsight},
		{count: 1, expected: "You have 1 active goal"},
		{count: 2, expected: "You have 2 active goals"},
		{count: 12, expected: "You have 12 active goals"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := InsightsText(tt.count); got != tt.expected {
				t.Errorf("InsightsText(%d) = %q, expected %q", tt.count, got, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	goals := []entity.Goal{goalWith(50000, 15000), goalWith(1000, 1000)}

	s := Summarize(goals)

	if s.TotalSaved != 16000 {
		t.Errorf("expected total saved 16000, got %d", s.TotalSaved)
	}
	if s.TotalTarget != 51000 {
		t.Errorf("expected total target 51000, got %d", s.TotalTarget)
	}
	if s.OverallProgress != 65 {
		t.Errorf("expected overall progress 65, got %d", s.OverallProgress)
	}
	if s.GoalCount != 2 || s.AchievedCount != 1 {
		t.Errorf("expected 2 goals / 1 achieved, got %d / %d", s.GoalCount, s.AchievedCount)
	}
	if s.Insights != "You have 2 active goals" {
		t.Errorf("unexpected insights %q", s.Insights)
	}
	if len(s.Goals) != 2 || s.Goals[0].Progress != 30 || !s.Goals[1].Achieved {
		t.Errorf("unexpected per-goal rows: %+v", s.Goals)
	}

	empty := Summarize(nil)
	if empty.OverallProgress != 0 || empty.Insights != NoGoalsInsight || len(empty.Goals) != 0 {
		t.Errorf("unexpected empty summary: %+v", empty)
	}
}
