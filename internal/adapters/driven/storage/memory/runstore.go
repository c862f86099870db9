package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
// History is lost when the process exits.
type RunStore struct {
	mu       sync.RWMutex
	runs     map[string]domain.Run
	outcomes map[string][]domain.DocumentOutcome
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs:     make(map[string]domain.Run),
		outcomes: make(map[string][]domain.DocumentOutcome),
	}
}

// SaveRun stores or updates a run.
func (s *RunStore) SaveRun(_ context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// GetRun retrieves a run by ID.
func (s *RunStore) GetRun(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// ListRuns returns runs, most recent first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.After(result[j].StartedAt)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// SaveOutcomes replaces the document outcomes of a run.
func (s *RunStore) SaveOutcomes(_ context.Context, runID string, outcomes []domain.DocumentOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[runID]; !ok {
		return domain.ErrNotFound
	}

	stored := make([]domain.DocumentOutcome, len(outcomes))
	for i, o := range outcomes {
		o.RunID = runID
		stored[i] = o
	}
	s.outcomes[runID] = stored
	return nil
}

// Outcomes returns the document outcomes of a run in discovery order.
func (s *RunStore) Outcomes(_ context.Context, runID string) ([]domain.DocumentOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.outcomes[runID]
	result := make([]domain.DocumentOutcome, len(stored))
	copy(result, stored)
	return result, nil
}

// DeleteRun removes a run and its outcomes.
func (s *RunStore) DeleteRun(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	delete(s.outcomes, id)
	return nil
}
