package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// MockExtractionService implements driving.ExtractionService for testing.
type MockExtractionService struct {
	RunFunc         func(ctx context.Context, req driving.RunRequest) (*driving.RunResult, error)
	ExtractTextFunc func(ctx context.Context, name, text string) (*domain.Record, []error, error)
	WatchFunc       func(ctx context.Context, req driving.RunRequest, onRun func(*driving.RunResult, error)) error

	LastRequest driving.RunRequest
}

func (m *MockExtractionService) Run(ctx context.Context, req driving.RunRequest) (*driving.RunResult, error) {
	m.LastRequest = req
	if m.RunFunc != nil {
		return m.RunFunc(ctx, req)
	}
	return &driving.RunResult{Run: &domain.Run{ID: "run-1", Root: req.Root, Output: req.Output}}, nil
}

func (m *MockExtractionService) ExtractText(ctx context.Context, name, text string) (*domain.Record, []error, error) {
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, name, text)
	}
	return domain.NewRecord(), nil, nil
}

func (m *MockExtractionService) Watch(
	ctx context.Context, req driving.RunRequest, onRun func(*driving.RunResult, error),
) error {
	m.LastRequest = req
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, req, onRun)
	}
	return nil
}

// MockDatasetService implements driving.DatasetService for testing.
type MockDatasetService struct {
	LoadFunc   func(ctx context.Context, path string) (*domain.Dataset, error)
	SaveFunc   func(ctx context.Context, ds *domain.Dataset, path, format string) error
	EnrichFunc func(ctx context.Context, ds *domain.Dataset, column string, enrichers ...string) error

	SavedPath string
}

func (m *MockDatasetService) Load(ctx context.Context, path string) (*domain.Dataset, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, path)
	}
	return &domain.Dataset{}, nil
}

func (m *MockDatasetService) Save(ctx context.Context, ds *domain.Dataset, path, format string) error {
	m.SavedPath = path
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ds, path, format)
	}
	return nil
}

func (m *MockDatasetService) Enrich(ctx context.Context, ds *domain.Dataset, column string, enrichers ...string) error {
	if m.EnrichFunc != nil {
		return m.EnrichFunc(ctx, ds, column, enrichers...)
	}
	return nil
}

func (m *MockDatasetService) Enrichers() []string {
	return []string{"wordcount"}
}

// MockRunService implements driving.RunService for testing.
type MockRunService struct {
	Runs     []domain.Run
	Outcomes map[string][]domain.DocumentOutcome
	Err      error

	LastLimit int
	Deleted   []string
}

func (m *MockRunService) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.LastLimit = limit
	return m.Runs, m.Err
}

func (m *MockRunService) Get(_ context.Context, id string) (*domain.Run, []domain.DocumentOutcome, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	for i := range m.Runs {
		if m.Runs[i].ID == id {
			return &m.Runs[i], m.Outcomes[id], nil
		}
	}
	return nil, nil, domain.ErrNotFound
}

func (m *MockRunService) Delete(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

// withServices installs s for the duration of the test.
func withServices(t *testing.T, s *Services) {
	t.Helper()

	prev := Services{
		Extraction: extractionService,
		Dataset:    datasetService,
		Runs:       runService,
		Config:     configStore,
		Report:     reportWriter,
		Settings:   settings,
	}
	if s.Settings.OutputPath == "" {
		s.Settings = domain.DefaultSettings()
	}
	SetServices(s)
	t.Cleanup(func() { SetServices(&prev) })
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
