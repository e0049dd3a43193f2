// Package ledger owns the goals and their saving entries.
//
// The Ledger is the single writer of goal state. Every mutation runs under one
// mutex, is persisted before it becomes visible, and either fully applies or
// leaves the ledger untouched. Readers always receive deep copies.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// CreationGate answers whether another goal may be created.
type CreationGate interface {
	CanCreateGoal(currentGoalCount int) bool
}

// NewGoalParams holds the validated-at-boundary fields of a new goal.
type NewGoalParams struct {
	Name           string
	TargetAmount   int64
	DurationMonths int
	EndDate        string
	Reminder       entity.ReminderPolicy // empty means the default policy
}

// SavingEntryParams holds the fields of a new saving entry.
type SavingEntryParams struct {
	Amount      int64
	Date        string
	Description string
}

// Ledger is the owning store of all goals.
type Ledger struct {
	mu    sync.Mutex
	goals []*entity.Goal
	byID  map[uuid.UUID]*entity.Goal
	gate  CreationGate
	repo  adapter.GoalRepository
}

// New creates an empty Ledger. repo may be nil to keep state in memory only.
func New(gate CreationGate, repo adapter.GoalRepository) *Ledger {
	return &Ledger{
		goals: make([]*entity.Goal, 0),
		byID:  make(map[uuid.UUID]*entity.Goal),
		gate:  gate,
		repo:  repo,
	}
}

// Load replaces the in-memory state with the repository contents.
// A goal whose saved amount disagrees with its entries aborts the load.
func (l *Ledger) Load(ctx context.Context) error {
	if l.repo == nil {
		return nil
	}

	goals, err := l.repo.LoadAll(ctx)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeLedgerPersistFailed,
			"failed to load goals",
			errors.Join(domainerror.ErrLedgerPersistFailed, err),
		)
	}

	byID := make(map[uuid.UUID]*entity.Goal, len(goals))
	for _, g := range goals {
		if !g.IsConsistent() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeCorruptLedger,
				"goal "+g.ID.String()+" is inconsistent",
				domainerror.ErrCorruptLedger,
			)
		}
		byID[g.ID] = g
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.goals = goals
	l.byID = byID

	return nil
}

// CreateGoal validates params, consults the gate and appends a new goal.
func (l *Ledger) CreateGoal(ctx context.Context, params NewGoalParams) (*entity.Goal, error) {
	name := strings.TrimSpace(params.Name)
	if err := validateNewGoal(name, params); err != nil {
		return nil, err
	}

	reminder := params.Reminder
	if reminder == "" {
		reminder = entity.DefaultReminderPolicy
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.gate.CanCreateGoal(len(l.goals)) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalLimitExceeded,
			"upgrade to premium to create more than one goal",
			domainerror.ErrGoalLimitExceeded,
		)
	}

	goal := entity.NewGoal(name, params.TargetAmount, params.DurationMonths, strings.TrimSpace(params.EndDate), reminder)

	if l.repo != nil {
		if err := l.repo.Create(ctx, goal); err != nil {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeLedgerPersistFailed,
				"failed to save goal",
				errors.Join(domainerror.ErrLedgerPersistFailed, err),
			)
		}
	}

	l.goals = append(l.goals, goal)
	l.byID[goal.ID] = goal

	slog.Info("Goal created",
		"goal_id", goal.ID,
		"target", goal.TargetAmount,
		"reminder", goal.Reminder,
		"goal_count", len(l.goals),
	)

	return goal.Clone(), nil
}

// AddSavingEntry records a saving against a goal. The entry append and the
// saved increment are applied together or not at all.
func (l *Ledger) AddSavingEntry(ctx context.Context, goalID uuid.UUID, params SavingEntryParams) (entity.SavingEntry, error) {
	if params.Amount <= 0 {
		return entity.SavingEntry{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSavingAmount,
			"saving amount must be greater than zero",
			domainerror.ErrInvalidSavingAmount,
		)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.byID[goalID]
	if !ok {
		return entity.SavingEntry{}, goalNotFound()
	}
	if !current.CanRecord(params.Amount) {
		return entity.SavingEntry{}, domainerror.NewGoalError(
			domainerror.ErrCodeSavedAmountTooLarge,
			"saving amount would exceed the largest amount a goal can hold",
			domainerror.ErrSavedAmountTooLarge,
		)
	}

	entry := entity.NewSavingEntry(params.Amount, strings.TrimSpace(params.Date), strings.TrimSpace(params.Description))

	next := current.Clone()
	next.Record(entry)
	entry.GoalID = next.ID

	if l.repo != nil {
		if err := l.repo.AppendEntry(ctx, next, entry); err != nil {
			return entity.SavingEntry{}, domainerror.NewGoalError(
				domainerror.ErrCodeLedgerPersistFailed,
				"failed to save saving entry",
				errors.Join(domainerror.ErrLedgerPersistFailed, err),
			)
		}
	}

	*current = *next

	slog.Info("Saving recorded",
		"goal_id", goalID,
		"amount", entry.Amount,
		"saved", current.SavedAmount,
	)

	return entry, nil
}

// ListGoals returns a snapshot of all goals in insertion order.
func (l *Ledger) ListGoals(ctx context.Context) []entity.Goal {
	l.mu.Lock()
	defer l.mu.Unlock()

	goals := make([]entity.Goal, len(l.goals))
	for i, g := range l.goals {
		goals[i] = *g.Clone()
	}
	return goals
}

// FindGoal returns a copy of the goal with the given ID.
func (l *Ledger) FindGoal(ctx context.Context, goalID uuid.UUID) (entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	g, ok := l.byID[goalID]
	if !ok {
		return entity.Goal{}, goalNotFound()
	}
	return *g.Clone(), nil
}

// Count returns the number of goals.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.goals)
}

func validateNewGoal(name string, params NewGoalParams) error {
	if name == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name is required",
			domainerror.ErrInvalidGoalName,
		)
	}
	if params.TargetAmount <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if params.DurationMonths <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDuration,
			"duration must be at least one month",
			domainerror.ErrInvalidDuration,
		)
	}
	if params.Reminder != "" && !params.Reminder.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReminderPolicy,
			"reminder must be 'first-of-month', 'fifteenth-of-month' or 'last-day-of-month'",
			domainerror.ErrInvalidReminderPolicy,
		)
	}
	return nil
}

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
