// Package reminder contains the monthly reminder use case.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
)

// DispatchRemindersInput names the calendar day to dispatch for.
type DispatchRemindersInput struct {
	Day time.Time
}

// DispatchRemindersOutput summarizes one dispatch run.
type DispatchRemindersOutput struct {
	Due         int  // goals whose reminder falls on Day and are not achieved
	Queued      int  // reminders queued by this run
	Duplicates  int  // reminders already queued for Day earlier
	NoRecipient bool // the profile has no email, nothing was queued
}

// DispatchRemindersUseCase queues the reminder of every goal due on a day.
type DispatchRemindersUseCase struct {
	goals     adapter.GoalSnapshotReader
	profiles  adapter.ProfileRepository
	reminders adapter.ReminderService
}

// NewDispatchRemindersUseCase creates a new DispatchRemindersUseCase instance.
func NewDispatchRemindersUseCase(
	goals adapter.GoalSnapshotReader,
	profiles adapter.ProfileRepository,
	reminders adapter.ReminderService,
) *DispatchRemindersUseCase {
	return &DispatchRemindersUseCase{
		goals:     goals,
		profiles:  profiles,
		reminders: reminders,
	}
}

// Execute performs the dispatch. Running it twice for the same day queues nothing new.
func (uc *DispatchRemindersUseCase) Execute(ctx context.Context, input DispatchRemindersInput) (*DispatchRemindersOutput, error) {
	day := input.Day
	if day.IsZero() {
		day = time.Now()
	}

	out := &DispatchRemindersOutput{}
	due := DueGoals(uc.goals.ListGoals(ctx), day)
	out.Due = len(due)
	if len(due) == 0 {
		return out, nil
	}

	profile, err := uc.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil || profile.Email == "" {
		slog.Info("Skipping reminders, no email on profile", "due", len(due))
		out.NoRecipient = true
		return out, nil
	}

	for i := range due {
		queued, err := uc.reminders.QueueGoalReminder(ctx, adapter.QueueGoalReminderInput{
			Goal:           &due[i],
			Day:            day,
			RecipientEmail: profile.Email,
			RecipientName:  profile.Name,
		})
		if err != nil {
			return out, fmt.Errorf("failed to queue reminder for goal %s: %w", due[i].ID, err)
		}
		if queued {
			out.Queued++
		} else {
			out.Duplicates++
		}
	}

	slog.Info("Reminders dispatched",
		"day", day.Format("2006-01-02"),
		"due", out.Due,
		"queued", out.Queued,
		"duplicates", out.Duplicates,
	)
	return out, nil
}

// DueGoals filters goals whose reminder falls on day and that still need savings.
func DueGoals(goals []entity.Goal, day time.Time) []entity.Goal {
	due := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.IsAchieved() || !g.Reminder.DueOn(day) {
			continue
		}
		due = append(due, g)
	}
	return due
}
