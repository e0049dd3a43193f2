package email

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/application/usecase/reminder"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/integration/email/templates"
)

// memoryQueue is an in-memory EmailQueueRepository.
type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
	keys map[string]bool
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: map[uuid.UUID]*entity.EmailJob{}, keys: map[string]bool{}}
}

func (q *memoryQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	if q.keys[job.DedupKey] {
		return errors.New("duplicate dedup key")
	}
	q.keys[job.DedupKey] = true
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) ExistsByDedupKey(ctx context.Context, key string) (bool, error) {
	return q.keys[key], nil
}

func (q *memoryQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	now := time.Now().UTC()
	var out []*entity.EmailJob
	for _, j := range q.jobs {
		if j.IsReadyToProcess(now) && len(out) < limit {
			out = append(out, j)
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	j, ok := q.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return j, nil
}

func (q *memoryQueue) GetByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, j := range q.jobs {
		if j.GoalID == goalID {
			out = append(out, j)
		}
	}
	return out, nil
}

func reminderGoal() *entity.Goal {
	g := entity.NewGoal("Bike", 12000, 12, "", entity.ReminderFirstOfMonth)
	g.Record(entity.NewSavingEntry(3000, "", ""))
	return g
}

func newWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestService_QueueGoalReminder(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	svc := NewService(queue, "http://localhost:5173")
	g := reminderGoal()
	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	input := adapter.QueueGoalReminderInput{Goal: g, Day: day, RecipientEmail: "asha@example.com", RecipientName: "Asha"}

	queued, err := svc.QueueGoalReminder(ctx, input)
	if err != nil || !queued {
		t.Fatalf("expected reminder to be queued, got %v (%v)", queued, err)
	}

	queued, err = svc.QueueGoalReminder(ctx, input)
	if err != nil || queued {
		t.Errorf("expected the same day to be skipped, got %v (%v)", queued, err)
	}

	jobs, _ := queue.GetByGoal(ctx, g.ID)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	data := jobs[0].TemplateData
	if data["suggested_monthly"] != "₹750" || data["remaining"] != "₹9,000" || data["progress"] != 25 {
		t.Errorf("unexpected template data: %+v", data)
	}

	_, err = svc.QueueGoalReminder(ctx, adapter.QueueGoalReminderInput{Goal: g, Day: day})
	if !errors.Is(err, domainerror.ErrMissingRecipient) {
		t.Errorf("expected ErrMissingRecipient, got %v", err)
	}
}

// brokenQueue fails every write.
type brokenQueue struct {
	*memoryQueue
}

func (q brokenQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	return errors.New("disk full")
}

func TestService_QueueFailure(t *testing.T) {
	svc := NewService(brokenQueue{newMemoryQueue()}, "")

	_, err := svc.QueueGoalReminder(context.Background(), adapter.QueueGoalReminderInput{
		Goal:           reminderGoal(),
		Day:            time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		RecipientEmail: "asha@example.com",
	})

	if !errors.Is(err, domainerror.ErrEmailQueueFailed) {
		t.Errorf("expected ErrEmailQueueFailed, got %v", err)
	}
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeEmailQueueFailed {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeEmailQueueFailed, err)
	}
}

func TestResendClient_MissingMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewResendClient("re_test_key", "MySavings", "noreply@mysavings.app")
	if err := client.WithBaseURL(server.URL); err != nil {
		t.Fatalf("base url: %v", err)
	}

	_, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "asha@example.com",
		Subject: "Time to save",
		Text:    "hello",
	})

	if !errors.Is(err, domainerror.ErrEmailSendFailed) {
		t.Errorf("expected ErrEmailSendFailed, got %v", err)
	}
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeEmailSendFailed {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeEmailSendFailed, err)
	}
}

func TestWorker_SendsQueuedReminder(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := NewMockEmailSender()
	svc := NewService(queue, "http://localhost:5173")
	g := reminderGoal()

	if _, err := svc.QueueGoalReminder(ctx, adapter.QueueGoalReminderInput{
		Goal: g, Day: time.Now(), RecipientEmail: "asha@example.com", RecipientName: "Asha",
	}); err != nil {
		t.Fatalf("queue: %v", err)
	}

	newWorker(t, queue, sender).ProcessNow(ctx)

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].To != "asha@example.com" || !strings.Contains(sent[0].Subject, "Bike") {
		t.Errorf("unexpected email: %+v", sent[0])
	}
	if !strings.Contains(sent[0].Text, "₹3,000 of ₹12,000") {
		t.Errorf("expected amounts in text body, got %q", sent[0].Text)
	}

	jobs, _ := queue.GetByGoal(ctx, g.ID)
	if jobs[0].Status != entity.EmailStatusSent || jobs[0].ResendID != "mock-1" {
		t.Errorf("unexpected job state: %+v", jobs[0])
	}
}

func TestWorker_RetriesTemporaryFailure(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)

	job := entity.NewReminderJob(reminderGoal(), time.Now(), "asha@example.com", "Asha", "Reminder", map[string]interface{}{})
	_ = queue.Create(ctx, job)

	newWorker(t, queue, sender).ProcessNow(ctx)

	got, _ := queue.GetByID(ctx, job.ID)
	if got.Status != entity.EmailStatusPending || got.Attempts != 1 || !got.ScheduledAt.After(time.Now()) {
		t.Errorf("expected a scheduled retry, got %+v", got)
	}
}

func TestWorker_PermanentFailure(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)

	job := entity.NewReminderJob(reminderGoal(), time.Now(), "asha@example.com", "Asha", "Reminder", map[string]interface{}{})
	_ = queue.Create(ctx, job)

	newWorker(t, queue, sender).ProcessNow(ctx)

	got, _ := queue.GetByID(ctx, job.ID)
	if got.Status != entity.EmailStatusFailed {
		t.Errorf("expected failed job, got %s", got.Status)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{err: nil, expected: false},
		{err: errors.New("401 unauthorized"), expected: true},
		{err: errors.New("422 validation_error: invalid `to` field"), expected: true},
		{err: errors.New("429 rate limit exceeded"), expected: false},
		{err: errors.New("500 internal server error"), expected: false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.expected {
			t.Errorf("isPermanentError(%v) = %v, expected %v", tt.err, got, tt.expected)
		}
	}
}

type countingDispatcher struct {
	days []time.Time
	err  error
}

func (d *countingDispatcher) Execute(ctx context.Context, input reminder.DispatchRemindersInput) (*reminder.DispatchRemindersOutput, error) {
	d.days = append(d.days, input.Day)
	if d.err != nil {
		return nil, d.err
	}
	return &reminder.DispatchRemindersOutput{}, nil
}

func TestScheduler_OncePerDay(t *testing.T) {
	ctx := context.Background()
	dispatcher := &countingDispatcher{}
	s := NewScheduler(dispatcher, time.Hour, time.UTC)

	now := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if !s.Tick(ctx) {
		t.Fatal("expected the first tick of the day to dispatch")
	}
	now = now.Add(3 * time.Hour)
	if s.Tick(ctx) {
		t.Error("expected later ticks on the same day to be skipped")
	}
	now = now.Add(24 * time.Hour)
	if !s.Tick(ctx) {
		t.Error("expected the next day to dispatch")
	}
	if len(dispatcher.days) != 2 {
		t.Errorf("expected 2 dispatches, got %d", len(dispatcher.days))
	}
}

func TestScheduler_RetriesFailedDay(t *testing.T) {
	dispatcher := &countingDispatcher{err: errors.New("database is locked")}
	s := NewScheduler(dispatcher, time.Hour, time.UTC)
	s.now = func() time.Time { return time.Date(2025, 7, 15, 6, 0, 0, 0, time.UTC) }

	s.Tick(context.Background())
	dispatcher.err = nil
	if !s.Tick(context.Background()) {
		t.Error("expected a failed day to be retried")
	}
}
