package driven

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// RunStore persists extraction run history.
type RunStore interface {
	// SaveRun stores or updates a run.
	SaveRun(ctx context.Context, run *domain.Run) error

	// GetRun retrieves a run by ID.
	GetRun(ctx context.Context, id string) (*domain.Run, error)

	// ListRuns returns runs, most recent first. limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// SaveOutcomes replaces the document outcomes of a run.
	SaveOutcomes(ctx context.Context, runID string, outcomes []domain.DocumentOutcome) error

	// Outcomes returns the document outcomes of a run in discovery order.
	Outcomes(ctx context.Context, runID string) ([]domain.DocumentOutcome, error)

	// DeleteRun removes a run and its outcomes.
	DeleteRun(ctx context.Context, id string) error
}
