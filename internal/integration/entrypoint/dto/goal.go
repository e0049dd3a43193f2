package dto

import (
	"time"

	"github.com/mysavings/backend/internal/application/metrics"
	"github.com/mysavings/backend/internal/application/usecase/goal"
	"github.com/mysavings/backend/internal/domain/entity"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name           string      `json:"name"`
	TargetAmount   NumberField `json:"target_amount"`
	DurationMonths NumberField `json:"duration_months"`
	EndDate        string      `json:"end_date,omitempty"`
	Reminder       string      `json:"reminder,omitempty"`
}

// AddSavingRequest represents the request body of a new saving.
type AddSavingRequest struct {
	Amount      NumberField `json:"amount"`
	Date        string      `json:"date,omitempty"`
	Description string      `json:"description,omitempty"`
}

// SavingEntryResponse represents a saving entry in API responses.
type SavingEntryResponse struct {
	ID            string    `json:"id"`
	GoalID        string    `json:"goal_id"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Date          string    `json:"date,omitempty"`
	Description   string    `json:"description,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// GoalResponse represents a single goal in API responses.
// Progress is unclamped; ProgressBar is clamped to 0..100 for display.
type GoalResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	TargetAmount   int64                 `json:"target_amount"`
	TargetDisplay  string                `json:"target_display"`
	SavedAmount    int64                 `json:"saved_amount"`
	SavedDisplay   string                `json:"saved_display"`
	Remaining      int64                 `json:"remaining"`
	DurationMonths int                   `json:"duration_months"`
	EndDate        string                `json:"end_date,omitempty"`
	Reminder       string                `json:"reminder"`
	ReminderLabel  string                `json:"reminder_label"`
	Progress       int                   `json:"progress"`
	ProgressBar    int                   `json:"progress_bar"`
	Achieved       bool                  `json:"achieved"`
	Entries        []SavingEntryResponse `json:"entries"`
	CreatedAt      time.Time             `json:"created_at"`
}

// GoalProgressResponse is one row of the analytics goal list.
type GoalProgressResponse struct {
	GoalID   string `json:"goal_id"`
	Name     string `json:"name"`
	Saved    int64  `json:"saved"`
	Target   int64  `json:"target"`
	Progress int    `json:"progress"`
	Achieved bool   `json:"achieved"`
}

// SummaryResponse represents the derived portfolio metrics.
type SummaryResponse struct {
	TotalSaved        int64                  `json:"total_saved"`
	TotalSavedDisplay string                 `json:"total_saved_display"`
	TotalTarget       int64                  `json:"total_target"`
	OverallProgress   int                    `json:"overall_progress"`
	GoalCount         int                    `json:"goal_count"`
	AchievedCount     int                    `json:"achieved_count"`
	Insights          string                 `json:"insights"`
	Goals             []GoalProgressResponse `json:"goals"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals   []GoalResponse  `json:"goals"`
	Summary SummaryResponse `json:"summary"`
}

// AddSavingResponse returns the new entry with the updated goal.
type AddSavingResponse struct {
	Entry SavingEntryResponse `json:"entry"`
	Goal  GoalResponse        `json:"goal"`
}

// SavingHistoryResponse lists the entries of one goal.
type SavingHistoryResponse struct {
	GoalID  string                `json:"goal_id"`
	Entries []SavingEntryResponse `json:"entries"`
	Total   int64                 `json:"total"`
}

// ToSavingEntryResponse converts a SavingEntry to its DTO.
func ToSavingEntryResponse(e entity.SavingEntry) SavingEntryResponse {
	return SavingEntryResponse{
		ID:            e.ID.String(),
		GoalID:        e.GoalID.String(),
		Amount:        e.Amount,
		AmountDisplay: valueobject.FormatRupees(e.Amount),
		Date:          e.Date,
		Description:   e.Description,
		RecordedAt:    e.RecordedAt,
	}
}

// ToSavingEntryResponses converts entries keeping their order.
func ToSavingEntryResponses(entries []entity.SavingEntry) []SavingEntryResponse {
	out := make([]SavingEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToSavingEntryResponse(e)
	}
	return out
}

// ToGoalResponse converts a goal view to a GoalResponse DTO.
func ToGoalResponse(g goal.GoalView) GoalResponse {
	return GoalResponse{
		ID:             g.ID.String(),
		Name:           g.Name,
		TargetAmount:   g.TargetAmount,
		TargetDisplay:  valueobject.FormatRupees(g.TargetAmount),
		SavedAmount:    g.SavedAmount,
		SavedDisplay:   valueobject.FormatRupees(g.SavedAmount),
		Remaining:      g.Remaining,
		DurationMonths: g.DurationMonths,
		EndDate:        g.EndDate,
		Reminder:       string(g.Reminder),
		ReminderLabel:  g.Reminder.Label(),
		Progress:       g.Progress,
		ProgressBar:    valueobject.ClampPercent(g.Progress),
		Achieved:       g.Achieved,
		Entries:        ToSavingEntryResponses(g.Entries),
		CreatedAt:      g.CreatedAt,
	}
}

// ToSummaryResponse converts a metrics summary to its DTO.
func ToSummaryResponse(s metrics.Summary) SummaryResponse {
	goals := make([]GoalProgressResponse, len(s.Goals))
	for i, g := range s.Goals {
		goals[i] = GoalProgressResponse{
			GoalID:   g.GoalID.String(),
			Name:     g.Name,
			Saved:    g.Saved,
			Target:   g.Target,
			Progress: g.Progress,
			Achieved: g.Achieved,
		}
	}
	return SummaryResponse{
		TotalSaved:        s.TotalSaved,
		TotalSavedDisplay: valueobject.FormatRupees(s.TotalSaved),
		TotalTarget:       s.TotalTarget,
		OverallProgress:   s.OverallProgress,
		GoalCount:         s.GoalCount,
		AchievedCount:     s.AchievedCount,
		Insights:          s.Insights,
		Goals:             goals,
	}
}

// ToGoalListResponse builds the goal list with its summary.
func ToGoalListResponse(goals []goal.GoalView, summary metrics.Summary) GoalListResponse {
	out := GoalListResponse{
		Goals:   make([]GoalResponse, len(goals)),
		Summary: ToSummaryResponse(summary),
	}
	for i, g := range goals {
		out.Goals[i] = ToGoalResponse(g)
	}
	return out
}
