package mcp

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	record    *domain.Record
	fieldErrs []error
	result    *driving.RunResult
	err       error

	lastRequest driving.RunRequest
	lastName    string
}

func (m *mockExtractionService) Run(_ context.Context, req driving.RunRequest) (*driving.RunResult, error) {
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockExtractionService) ExtractText(_ context.Context, name, _ string) (*domain.Record, []error, error) {
	m.lastName = name
	return m.record, m.fieldErrs, m.err
}

func (m *mockExtractionService) Watch(context.Context, driving.RunRequest, func(*driving.RunResult, error)) error {
	return m.err
}

// mockRunService is a mock implementation of driving.RunService.
type mockRunService struct {
	runs     []domain.Run
	run      *domain.Run
	outcomes []domain.DocumentOutcome
	err      error
}

func (m *mockRunService) List(context.Context, int) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockRunService) Get(context.Context, string) (*domain.Run, []domain.DocumentOutcome, error) {
	return m.run, m.outcomes, m.err
}

func (m *mockRunService) Delete(context.Context, string) error {
	return m.err
}
