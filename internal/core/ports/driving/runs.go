package driving

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// RunService exposes extraction run history.
type RunService interface {
	// List returns runs, most recent first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a run and its document outcomes.
	Get(ctx context.Context, id string) (*domain.Run, []domain.DocumentOutcome, error)

	// Delete removes a run from history.
	Delete(ctx context.Context, id string) error
}
