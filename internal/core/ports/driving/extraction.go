package driving

import (
	"context"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// RunRequest describes one extraction batch.
type RunRequest struct {
	// Root is the directory holding the project page dumps.
	Root string

	// Output is where the table is written. Empty means no file is written.
	Output string

	// Format selects the dataset writer ("csv" or "xlsx").
	Format string

	// Discovery controls which documents are read.
	Discovery domain.DiscoveryOptions
}

// RunResult is the outcome of an extraction batch.
type RunResult struct {
	Run      *domain.Run
	Dataset  *domain.Dataset
	Outcomes []domain.DocumentOutcome
}

// ExtractionService runs the extraction pipeline.
type ExtractionService interface {
	// Run extracts every document under req.Root, assembles the dataset and
	// writes it to req.Output. Per-document and per-field failures never
	// abort the batch.
	Run(ctx context.Context, req RunRequest) (*RunResult, error)

	// ExtractText runs the pipeline on a single text and returns the
	// normalized record.
	ExtractText(ctx context.Context, name, text string) (*domain.Record, []error, error)

	// Watch runs once, then re-runs whenever documents under req.Root
	// change, until ctx is cancelled. onRun is called after every run.
	Watch(ctx context.Context, req RunRequest, onRun func(*RunResult, error)) error
}
