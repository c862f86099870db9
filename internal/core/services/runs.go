package services

import (
	"context"
	"fmt"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// RunService exposes extraction run history.
type RunService struct {
	store driven.RunStore
}

// NewRunService creates a new run service.
func NewRunService(store driven.RunStore) *RunService {
	return &RunService{store: store}
}

// List returns runs, most recent first.
func (s *RunService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns a run and its document outcomes.
func (s *RunService) Get(ctx context.Context, id string) (*domain.Run, []domain.DocumentOutcome, error) {
	if id == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	run, err := s.store.GetRun(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get run: %w", err)
	}
	outcomes, err := s.store.Outcomes(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get outcomes: %w", err)
	}
	return run, outcomes, nil
}

// Delete removes a run from history.
func (s *RunService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.store.DeleteRun(ctx, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}
