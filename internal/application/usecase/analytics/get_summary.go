// Package analytics contains the analytics screen use case.
package analytics

import (
	"context"

	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/application/metrics"
)

// GetSummaryInput represents the input for the analytics summary.
type GetSummaryInput struct{}

// GetSummaryOutput wraps the derived figures.
type GetSummaryOutput struct {
	Summary metrics.Summary
}

// GetSummaryUseCase computes portfolio metrics from a ledger snapshot.
type GetSummaryUseCase struct {
	ledger *ledger.Ledger
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(l *ledger.Ledger) *GetSummaryUseCase {
	return &GetSummaryUseCase{ledger: l}
}

// Execute performs the computation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	return &GetSummaryOutput{
		Summary: metrics.Summarize(uc.ledger.ListGoals(ctx)),
	}, nil
}
