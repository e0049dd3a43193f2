// Package email queues and delivers the monthly goal reminders.
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueGoalReminder queues the reminder of a goal for a day, at most once per day.
func (s *Service) QueueGoalReminder(ctx context.Context, input adapter.QueueGoalReminderInput) (bool, error) {
	if input.RecipientEmail == "" {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"no recipient for goal reminder",
			domainerror.ErrMissingRecipient,
		)
	}

	key := entity.ReminderDedupKey(input.Goal.ID, input.Day)
	exists, err := s.queue.ExistsByDedupKey(ctx, key)
	if err != nil {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to check reminder queue",
			errors.Join(domainerror.ErrEmailQueueFailed, err),
		)
	}
	if exists {
		return false, nil
	}

	g := input.Goal
	subject := fmt.Sprintf("Time to save for %s - MySavings", g.Name)
	templateData := map[string]interface{}{
		"recipient_name":    input.RecipientName,
		"goal_name":         g.Name,
		"saved":             valueobject.FormatRupees(g.SavedAmount),
		"target":            valueobject.FormatRupees(g.TargetAmount),
		"remaining":         valueobject.FormatRupees(g.RemainingAmount()),
		"progress":          g.Progress(),
		"suggested_monthly": valueobject.FormatRupees(g.SuggestedMonthly()),
		"reminder_label":    g.Reminder.Label(),
		"app_url":           s.appBaseURL,
	}

	job := entity.NewReminderJob(g, input.Day, input.RecipientEmail, input.RecipientName, subject, templateData)

	if err := s.queue.Create(ctx, job); err != nil {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal reminder",
			errors.Join(domainerror.ErrEmailQueueFailed, err),
		)
	}

	return true, nil
}

// Ensure Service implements adapter.ReminderService.
var _ adapter.ReminderService = (*Service)(nil)
