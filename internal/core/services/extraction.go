package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/dataset"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs project pages through preparation, field
// extraction and the record pipeline, then assembles and writes the table.
type ExtractionService struct {
	sources   driven.SourceFactory
	preparer  driven.TextPreparer
	extractor driven.FieldExtractor
	pipeline  driven.RecordPipeline
	runStore  driven.RunStore
	writers   map[string]driven.DatasetWriter
	assembler *dataset.Assembler

	watchInterval time.Duration
	now           func() time.Time
}

// NewExtractionService creates a new extraction service.
// runStore is optional: when nil, runs are not recorded.
func NewExtractionService(
	sources driven.SourceFactory,
	preparer driven.TextPreparer,
	extractor driven.FieldExtractor,
	pipeline driven.RecordPipeline,
	runStore driven.RunStore,
	writers ...driven.DatasetWriter,
) *ExtractionService {
	schema := append(append([]string{}, extractor.Fields()...), domain.FieldFileName)
	return &ExtractionService{
		sources:       sources,
		preparer:      preparer,
		extractor:     extractor,
		pipeline:      pipeline,
		runStore:      runStore,
		writers:       writerIndex(writers),
		assembler:     dataset.NewAssembler(schema, dataset.WithTextColumns(domain.FieldFileName)),
		watchInterval: domain.DefaultSettings().WatchInterval,
		now:           time.Now,
	}
}

// SetWatchInterval sets the minimum delay between two watch-triggered runs.
func (s *ExtractionService) SetWatchInterval(d time.Duration) {
	if d > 0 {
		s.watchInterval = d
	}
}

// Run extracts every document under req.Root and writes the table.
func (s *ExtractionService) Run(ctx context.Context, req driving.RunRequest) (*driving.RunResult, error) {
	if req.Root == "" {
		return nil, fmt.Errorf("root: %w", domain.ErrInvalidInput)
	}

	format := formatFor(req.Output, req.Format)
	var writer driven.DatasetWriter
	if req.Output != "" {
		w, err := lookupWriter(s.writers, format)
		if err != nil {
			return nil, err
		}
		writer = w
	}

	run := &domain.Run{
		ID:        uuid.New().String(),
		Root:      req.Root,
		Output:    req.Output,
		Format:    format,
		Status:    domain.RunRunning,
		StartedAt: s.now(),
	}
	s.saveRun(ctx, run)

	logger.Section("Extraction")
	logger.Info("Run %s: reading %s", run.ID, req.Root)

	records, outcomes, err := s.collect(ctx, req, run)
	if err != nil {
		return s.fail(ctx, run, outcomes, err)
	}

	ds := s.assembler.Assemble(records)
	run.Rows = ds.Len()
	run.Columns = len(ds.Columns)
	if ds.Len() == 0 {
		logger.Warn("No documents extracted from %s", req.Root)
	}

	if writer != nil {
		checksum, err := writeDataset(ctx, writer, req.Output, ds)
		if err != nil {
			return s.fail(ctx, run, outcomes, err)
		}
		run.Checksum = checksum
		logger.Info("Wrote %d rows x %d columns to %s", run.Rows, run.Columns, req.Output)
	}

	run.Status = domain.RunCompleted
	run.FinishedAt = s.now()
	s.saveRun(ctx, run)
	s.saveOutcomes(ctx, run.ID, outcomes)

	return &driving.RunResult{Run: run, Dataset: ds, Outcomes: outcomes}, nil
}

// collect drains the source strictly in discovery order.
func (s *ExtractionService) collect(
	ctx context.Context,
	req driving.RunRequest,
	run *domain.Run,
) ([]*domain.Record, []domain.DocumentOutcome, error) {
	source, err := s.sources.Open(req.Root, discoveryFor(req))
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	if err := source.Validate(ctx); err != nil {
		return nil, nil, fmt.Errorf("validate source: %w", err)
	}

	var (
		records  []*domain.Record
		outcomes []domain.DocumentOutcome
		fatal    error
	)

	docs, errs := source.FullSync(ctx)
	for docs != nil || errs != nil {
		select {
		case <-ctx.Done():
			return records, outcomes, ctx.Err()

		case raw, ok := <-docs:
			if !ok {
				docs = nil
				continue
			}
			if isOutputFile(raw.URI, req.Output) {
				logger.Debug("Skipping output file %s", raw.URI)
				continue
			}
			run.DocumentsSeen++
			rec, outcome := s.processRaw(ctx, &raw)
			if rec != nil {
				records = append(records, rec)
				run.DocumentsExtracted++
				run.FieldErrors += outcome.FieldErrors
			} else {
				run.DocumentsSkipped++
			}
			outcomes = append(outcomes, outcome)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			var readErr *domain.ReadError
			if !errors.As(err, &readErr) {
				fatal = err
				continue
			}
			logger.Warn("Skipping %s: %v", readErr.URI, readErr.Err)
			run.DocumentsSeen++
			run.DocumentsSkipped++
			outcomes = append(outcomes, domain.DocumentOutcome{
				URI:     readErr.URI,
				Status:  domain.OutcomeSkipped,
				Message: readErr.Err.Error(),
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return records, outcomes, err
	}
	return records, outcomes, fatal
}

// processRaw prepares and extracts one document. A nil record means the
// document was skipped.
func (s *ExtractionService) processRaw(ctx context.Context, raw *domain.RawDocument) (*domain.Record, domain.DocumentOutcome) {
	outcome := domain.DocumentOutcome{URI: raw.URI, Name: raw.Name}

	doc, err := s.preparer.Prepare(ctx, raw)
	if err != nil {
		logger.Warn("Skipping %s: %v", raw.URI, err)
		outcome.Status = domain.OutcomeSkipped
		outcome.Message = err.Error()
		return nil, outcome
	}
	outcome.Name = doc.Name

	rec, fieldErrs, err := s.extract(ctx, doc)
	if err != nil {
		logger.Warn("Skipping %s: %v", raw.URI, err)
		outcome.Status = domain.OutcomeSkipped
		outcome.Message = err.Error()
		return nil, outcome
	}

	outcome.Status = domain.OutcomeExtracted
	outcome.Fields = rec.Len()
	outcome.FieldErrors = len(fieldErrs)
	if len(fieldErrs) > 0 {
		outcome.Message = errors.Join(fieldErrs...).Error()
	}
	logger.Debug("Extracted %s: %d fields, %d field errors", doc.Name, rec.Len(), len(fieldErrs))
	return rec, outcome
}

// extract applies the rule set and the record pipeline, then tags the
// record with its document name.
func (s *ExtractionService) extract(ctx context.Context, doc *domain.Document) (*domain.Record, []error, error) {
	rec, fieldErrs := s.extractor.Extract(ctx, doc)
	if rec == nil {
		return nil, fieldErrs, errors.Join(append([]error{domain.ErrInvalidInput}, fieldErrs...)...)
	}
	if err := s.pipeline.Process(ctx, rec); err != nil {
		return nil, fieldErrs, fmt.Errorf("normalise: %w", err)
	}
	rec.Set(domain.FieldFileName, domain.StringValue(doc.Name))
	return rec, fieldErrs, nil
}

// ExtractText runs the pipeline on a single text.
func (s *ExtractionService) ExtractText(ctx context.Context, name, text string) (*domain.Record, []error, error) {
	if name == "" {
		name = "text"
	}
	raw := &domain.RawDocument{URI: name, Name: name, MIMEType: "text/plain", Content: []byte(text)}

	doc, err := s.preparer.Prepare(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	return s.extract(ctx, doc)
}

// Watch runs once, then re-runs on every change under req.Root. Bursts of
// events are coalesced and runs are spaced by the watch interval. Changes
// to the output table itself are ignored.
func (s *ExtractionService) Watch(ctx context.Context, req driving.RunRequest, onRun func(*driving.RunResult, error)) error {
	if onRun == nil {
		onRun = func(*driving.RunResult, error) {}
	}

	source, err := s.sources.Open(req.Root, discoveryFor(req))
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	changes, err := source.Watch(ctx)
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Every(s.watchInterval), 1)
	trigger := func() {
		_ = limiter.Wait(ctx)
		if ctx.Err() != nil {
			return
		}
		onRun(s.Run(ctx, req))
	}

	trigger()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if isOutputFile(change.Document.URI, req.Output) {
				continue
			}
			logger.Debug("Change detected: %s %s", change.Type, change.Document.URI)
			drain(changes)
			trigger()
		}
	}
}

// drain discards events that are already queued.
func drain(changes <-chan domain.RawDocumentChange) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (s *ExtractionService) fail(
	ctx context.Context,
	run *domain.Run,
	outcomes []domain.DocumentOutcome,
	err error,
) (*driving.RunResult, error) {
	run.Status = domain.RunFailed
	run.Error = err.Error()
	run.FinishedAt = s.now()
	// Cancellation must not prevent the failure from being recorded.
	s.saveRun(context.WithoutCancel(ctx), run)
	s.saveOutcomes(context.WithoutCancel(ctx), run.ID, outcomes)
	logger.Warn("Run %s failed: %v", run.ID, err)
	return &driving.RunResult{Run: run, Outcomes: outcomes}, err
}

func (s *ExtractionService) saveRun(ctx context.Context, run *domain.Run) {
	if s.runStore == nil {
		return
	}
	if err := s.runStore.SaveRun(ctx, run); err != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, err)
	}
}

func (s *ExtractionService) saveOutcomes(ctx context.Context, runID string, outcomes []domain.DocumentOutcome) {
	if s.runStore == nil || len(outcomes) == 0 {
		return
	}
	if err := s.runStore.SaveOutcomes(ctx, runID, outcomes); err != nil {
		logger.Warn("Failed to record outcomes of run %s: %v", runID, err)
	}
}
