package entity

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestGoal_Record(t *testing.T) {
	goal := NewGoal("Buy A Car", 50000, 24, "30 Jun 2025", ReminderFirstOfMonth)

	amounts := []int64{5000, 5000, 5000}
	for i, amount := range amounts {
		goal.Record(NewSavingEntry(amount, "30 Jan 2025", "Salary savings"))

		if !goal.IsConsistent() {
			t.Fatalf("after entry %d saved %d does not match entries total %d", i, goal.SavedAmount, goal.EntriesTotal())
		}
	}

	if goal.SavedAmount != 15000 {
		t.Errorf("expected saved 15000, got %d", goal.SavedAmount)
	}
	if goal.Progress() != 30 {
		t.Errorf("expected progress 30, got %d", goal.Progress())
	}
	if len(goal.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(goal.Entries))
	}
	for _, e := range goal.Entries {
		if e.GoalID != goal.ID {
			t.Errorf("entry %s not linked to goal", e.ID)
		}
	}
}

func TestGoal_CanRecord(t *testing.T) {
	goal := NewGoal("Car", 1000, 12, "", ReminderFirstOfMonth)

	if goal.CanRecord(0) || goal.CanRecord(-1) {
		t.Error("non-positive amounts must be rejected")
	}
	if !goal.CanRecord(math.MaxInt64) {
		t.Error("expected MaxInt64 to fit on an empty goal")
	}

	goal.Record(NewSavingEntry(10, "", ""))
	if goal.CanRecord(math.MaxInt64) {
		t.Error("expected MaxInt64 to overflow once something is saved")
	}
	if !goal.CanRecord(math.MaxInt64 - 10) {
		t.Error("expected the exact remaining headroom to fit")
	}
}

func TestGoal_SuggestedMonthly(t *testing.T) {
	tests := []struct {
		name     string
		target   int64
		saved    int64
		months   int
		expected int64
	}{
		{name: "even split", target: 12000, saved: 3000, months: 12, expected: 750},
		{name: "rounds up", target: 1000, saved: 0, months: 3, expected: 334},
		{name: "achieved", target: 1000, saved: 1500, months: 3, expected: 0},
		{name: "no duration", target: 1000, saved: 200, months: 0, expected: 800},
		{name: "large target", target: math.MaxInt64, saved: 0, months: 2, expected: math.MaxInt64/2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewGoal("Goal", tt.target, tt.months, "", ReminderFirstOfMonth)
			if tt.saved > 0 {
				goal.Record(NewSavingEntry(tt.saved, "", ""))
			}
			if got := goal.SuggestedMonthly(); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGoal_IsAchieved(t *testing.T) {
	goal := NewGoal("Laptop", 1000, 6, "", ReminderFifteenthOfMonth)

	if goal.IsAchieved() {
		t.Error("new goal should not be achieved")
	}

	goal.Record(NewSavingEntry(1000, "", ""))
	if !goal.IsAchieved() {
		t.Error("goal with saved == target should be achieved")
	}

	goal.Record(NewSavingEntry(500, "", ""))
	if goal.Progress() != 150 {
		t.Errorf("expected unclamped progress 150, got %d", goal.Progress())
	}
	if goal.RemainingAmount() != 0 {
		t.Errorf("expected remaining 0, got %d", goal.RemainingAmount())
	}
}

func TestGoal_Clone(t *testing.T) {
	goal := NewGoal("Trip", 2000, 3, "", ReminderLastDayOfMonth)
	goal.Record(NewSavingEntry(100, "", ""))

	clone := goal.Clone()
	clone.Record(NewSavingEntry(200, "", ""))

	if len(goal.Entries) != 1 || goal.SavedAmount != 100 {
		t.Errorf("mutating the clone changed the original: %+v", goal)
	}
}

func TestParseReminderPolicy(t *testing.T) {
	tests := []struct {
		raw      string
		expected ReminderPolicy
		ok       bool
	}{
		{raw: "", expected: ReminderFirstOfMonth, ok: true},
		{raw: "first-of-month", expected: ReminderFirstOfMonth, ok: true},
		{raw: "1st of every month", expected: ReminderFirstOfMonth, ok: true},
		{raw: "15th of every month", expected: ReminderFifteenthOfMonth, ok: true},
		{raw: "LAST-DAY-OF-MONTH", expected: ReminderLastDayOfMonth, ok: true},
		{raw: "Last day of every month", expected: ReminderLastDayOfMonth, ok: true},
		{raw: "every tuesday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseReminderPolicy(tt.raw)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestReminderPolicy_DueOn(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		policy   ReminderPolicy
		day      time.Time
		expected bool
	}{
		{name: "first on the 1st", policy: ReminderFirstOfMonth, day: date(2025, 3, 1), expected: true},
		{name: "first on the 2nd", policy: ReminderFirstOfMonth, day: date(2025, 3, 2), expected: false},
		{name: "fifteenth on the 15th", policy: ReminderFifteenthOfMonth, day: date(2025, 3, 15), expected: true},
		{name: "last day of february", policy: ReminderLastDayOfMonth, day: date(2025, 2, 28), expected: true},
		{name: "leap year february 28th", policy: ReminderLastDayOfMonth, day: date(2024, 2, 28), expected: false},
		{name: "leap year february 29th", policy: ReminderLastDayOfMonth, day: date(2024, 2, 29), expected: true},
		{name: "thirtieth of a 31 day month", policy: ReminderLastDayOfMonth, day: date(2025, 1, 30), expected: false},
		{name: "unknown policy", policy: ReminderPolicy("weekly"), day: date(2025, 1, 1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.DueOn(tt.day); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEmailJob_MarkFailed(t *testing.T) {
	goal := NewGoal("Car", 100, 1, "", ReminderFirstOfMonth)
	job := NewReminderJob(goal, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "me@example.com", "Me", "Reminder", nil)

	if job.DedupKey != goal.ID.String()+":2025-03-01" {
		t.Errorf("unexpected dedup key %s", job.DedupKey)
	}

	job.MarkFailed(errors.New("timeout"), false)
	if job.Status != EmailStatusPending {
		t.Errorf("expected pending after first temporary failure, got %s", job.Status)
	}
	if job.IsReadyToProcess(time.Now().UTC()) {
		t.Error("retry should be scheduled in the future")
	}

	job.MarkFailed(errors.New("timeout"), false)
	job.MarkFailed(errors.New("timeout"), false)
	if job.Status != EmailStatusFailed {
		t.Errorf("expected failed after max attempts, got %s", job.Status)
	}

	other := NewReminderJob(goal, time.Now(), "me@example.com", "Me", "Reminder", nil)
	other.MarkFailed(errors.New("422 validation"), true)
	if other.Status != EmailStatusFailed || other.Attempts != 1 {
		t.Errorf("permanent failure should fail immediately, got %s after %d attempts", other.Status, other.Attempts)
	}
}
