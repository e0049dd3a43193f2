// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	TemplateGoalReminder EmailTemplateType = "goal_reminder"
)

// defaultMaxAttempts bounds delivery retries of a single job.
const defaultMaxAttempts = 3

// EmailJob represents a queued email, currently always a monthly goal reminder.
// DedupKey is unique per goal and reminder day so a day is never reminded twice.
type EmailJob struct {
	ID             uuid.UUID
	GoalID         uuid.UUID
	DedupKey       string
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewReminderJob creates a pending reminder email for a goal on the given day.
func NewReminderJob(goal *Goal, day time.Time, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		GoalID:         goal.ID,
		DedupKey:       ReminderDedupKey(goal.ID, day),
		TemplateType:   TemplateGoalReminder,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// ReminderDedupKey identifies the reminder of one goal on one calendar day.
func ReminderDedupKey(goalID uuid.UUID, day time.Time) string {
	return goalID.String() + ":" + day.Format("2006-01-02")
}

// MarkProcessing marks the job as picked up by the worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed records a failed delivery. Permanent failures and exhausted
// jobs become failed, everything else goes back to pending with a backoff.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		now := time.Now().UTC()
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = time.Now().UTC().Add(retryDelay(e.Attempts))
}

// retryDelay returns the backoff before the given attempt: 1min, then 5min.
func retryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return time.Minute
	}
	return 5 * time.Minute
}

// IsReadyToProcess returns true if the job is pending and due.
func (e *EmailJob) IsReadyToProcess(now time.Time) bool {
	return e.Status == EmailStatusPending && !now.Before(e.ScheduledAt)
}
