// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/mysavings/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReminderService defines the interface for queueing reminder emails.
type ReminderService interface {
	// QueueGoalReminder queues the reminder of goal for day.
	// It reports false when that reminder was already queued.
	QueueGoalReminder(ctx context.Context, input QueueGoalReminderInput) (bool, error)
}

// QueueGoalReminderInput represents the input for queueing a goal reminder.
type QueueGoalReminderInput struct {
	Goal           *entity.Goal
	Day            time.Time
	RecipientEmail string
	RecipientName  string
}
