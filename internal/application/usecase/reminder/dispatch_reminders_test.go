package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
)

type snapshot []entity.Goal

func (s snapshot) ListGoals(ctx context.Context) []entity.Goal { return s }

type staticProfile struct{ profile *entity.Profile }

func (s staticProfile) Get(ctx context.Context) (*entity.Profile, error)  { return s.profile, nil }
func (s staticProfile) Save(ctx context.Context, p *entity.Profile) error { return nil }

// recordingReminders queues each dedup key once.
type recordingReminders struct {
	keys  map[string]bool
	calls []adapter.QueueGoalReminderInput
}

func (r *recordingReminders) QueueGoalReminder(ctx context.Context, input adapter.QueueGoalReminderInput) (bool, error) {
	if r.keys == nil {
		r.keys = map[string]bool{}
	}
	r.calls = append(r.calls, input)
	key := entity.ReminderDedupKey(input.Goal.ID, input.Day)
	if r.keys[key] {
		return false, nil
	}
	r.keys[key] = true
	return true, nil
}

func goal(name string, policy entity.ReminderPolicy, target, saved int64) entity.Goal {
	g := entity.NewGoal(name, target, 6, "", policy)
	if saved > 0 {
		g.Record(entity.NewSavingEntry(saved, "", ""))
	}
	return *g
}

func TestDueGoals(t *testing.T) {
	goals := []entity.Goal{
		goal("first", entity.ReminderFirstOfMonth, 100, 0),
		goal("fifteenth", entity.ReminderFifteenthOfMonth, 100, 0),
		goal("last", entity.ReminderLastDayOfMonth, 100, 0),
		goal("first achieved", entity.ReminderFirstOfMonth, 100, 100),
	}

	tests := []struct {
		day      time.Time
		expected []string
	}{
		{day: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), expected: []string{"first"}},
		{day: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), expected: []string{"fifteenth"}},
		{day: time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC), expected: []string{"last"}},
		{day: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.day.Format("2006-01-02"), func(t *testing.T) {
			due := DueGoals(goals, tt.day)
			if len(due) != len(tt.expected) {
				t.Fatalf("expected %d due goals, got %d", len(tt.expected), len(due))
			}
			for i, name := range tt.expected {
				if due[i].Name != name {
					t.Errorf("expected %q, got %q", name, due[i].Name)
				}
			}
		})
	}
}

func TestDispatchRemindersUseCase(t *testing.T) {
	ctx := context.Background()
	goals := snapshot{
		goal("Bike", entity.ReminderFirstOfMonth, 1000, 200),
		goal("Phone", entity.ReminderFirstOfMonth, 500, 0),
	}
	day := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	reminders := &recordingReminders{}
	uc := NewDispatchRemindersUseCase(goals, staticProfile{entity.NewProfile("Asha", "asha@example.com")}, reminders)

	out, err := uc.Execute(ctx, DispatchRemindersInput{Day: day})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Due != 2 || out.Queued != 2 || out.Duplicates != 0 {
		t.Errorf("unexpected first run: %+v", out)
	}
	if reminders.calls[0].RecipientEmail != "asha@example.com" || reminders.calls[0].RecipientName != "Asha" {
		t.Errorf("unexpected recipient: %+v", reminders.calls[0])
	}

	again, err := uc.Execute(ctx, DispatchRemindersInput{Day: day})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Queued != 0 || again.Duplicates != 2 {
		t.Errorf("expected second run to queue nothing, got %+v", again)
	}
}

func TestDispatchRemindersUseCase_NoEmail(t *testing.T) {
	goals := snapshot{goal("Bike", entity.ReminderFirstOfMonth, 1000, 0)}
	reminders := &recordingReminders{}
	uc := NewDispatchRemindersUseCase(goals, staticProfile{entity.DefaultProfile()}, reminders)

	out, err := uc.Execute(context.Background(), DispatchRemindersInput{Day: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.NoRecipient || out.Queued != 0 || len(reminders.calls) != 0 {
		t.Errorf("expected nothing queued without an email, got %+v", out)
	}
}
