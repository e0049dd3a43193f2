package email

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mysavings/backend/internal/application/usecase/reminder"
)

// ReminderDispatcher runs one reminder dispatch for a day.
type ReminderDispatcher interface {
	Execute(ctx context.Context, input reminder.DispatchRemindersInput) (*reminder.DispatchRemindersOutput, error)
}

// Scheduler triggers the reminder dispatch once per calendar day in loc.
type Scheduler struct {
	dispatcher ReminderDispatcher
	interval   time.Duration
	loc        *time.Location
	now        func() time.Time

	mu      sync.Mutex
	lastDay string
}

// NewScheduler creates a Scheduler checking the calendar every interval.
// A nil loc means UTC.
func NewScheduler(dispatcher ReminderDispatcher, interval time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		loc:        loc,
		now:        time.Now,
	}
}

// Start runs the check loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	slog.Info("Reminder scheduler started", "interval", s.interval, "timezone", s.loc.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick dispatches reminders if today has not been handled yet.
// It reports whether a dispatch ran.
func (s *Scheduler) Tick(ctx context.Context) bool {
	today := s.now().In(s.loc)
	key := today.Format("2006-01-02")

	s.mu.Lock()
	if s.lastDay == key {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	if _, err := s.dispatcher.Execute(ctx, reminder.DispatchRemindersInput{Day: today}); err != nil {
		// The day stays unhandled so the next tick retries.
		slog.Error("Reminder dispatch failed", "day", key, "error", err)
		return false
	}

	s.mu.Lock()
	s.lastDay = key
	s.mu.Unlock()
	return true
}
