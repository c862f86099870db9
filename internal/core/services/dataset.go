package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/dataset"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService loads, enriches and saves delimited tables.
type DatasetService struct {
	reader    driven.DatasetReader
	writers   map[string]driven.DatasetWriter
	enrichers map[string]driven.Enricher
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(reader driven.DatasetReader, writers []driven.DatasetWriter, enrichers ...driven.Enricher) *DatasetService {
	s := &DatasetService{
		reader:    reader,
		writers:   writerIndex(writers),
		enrichers: make(map[string]driven.Enricher, len(enrichers)),
	}
	for _, e := range enrichers {
		s.enrichers[e.Name()] = e
	}
	return s
}

// Load reads a table and infers column types.
func (s *DatasetService) Load(ctx context.Context, path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return s.reader.Read(ctx, f, path)
}

// Save writes a table in the given format. An empty format is derived from
// the path extension.
func (s *DatasetService) Save(ctx context.Context, ds *domain.Dataset, path, format string) error {
	if ds == nil || path == "" {
		return domain.ErrInvalidInput
	}
	w, err := lookupWriter(s.writers, formatFor(path, format))
	if err != nil {
		return err
	}
	_, err = writeDataset(ctx, w, path, ds)
	return err
}

// Enrich appends one derived column per enricher. With no names every
// registered enricher runs. All target columns are checked before any is
// added, so a refused enrichment leaves the dataset untouched.
func (s *DatasetService) Enrich(ctx context.Context, ds *domain.Dataset, column string, names ...string) error {
	if ds == nil {
		return domain.ErrInvalidInput
	}
	src := ds.ColumnIndex(column)
	if src < 0 {
		return fmt.Errorf("column %q: %w", column, domain.ErrNotFound)
	}
	if len(names) == 0 {
		names = s.Enrichers()
	}

	selected := make([]driven.Enricher, 0, len(names))
	targets := make(map[string]bool, len(names))
	for _, name := range names {
		e, ok := s.enrichers[name]
		if !ok {
			return fmt.Errorf("enricher %q: %w", name, domain.ErrNotFound)
		}
		target := column + "_" + e.Suffix()
		if ds.ColumnIndex(target) >= 0 || targets[target] {
			return fmt.Errorf("column %q: %w", target, domain.ErrAlreadyExists)
		}
		targets[target] = true
		selected = append(selected, e)
	}

	for _, e := range selected {
		values, err := s.derive(ctx, ds, src, e)
		if err != nil {
			return err
		}
		col := domain.Column{Name: column + "_" + e.Suffix(), Type: domain.ColumnText}
		if err := ds.AddColumn(col, values); err != nil {
			return fmt.Errorf("add column %q: %w", col.Name, err)
		}
		logger.Info("Enriched %s with %s", column, e.Name())
	}

	dataset.Infer(ds, domain.FieldDepartment)
	return nil
}

// derive computes one cell per row. Empty and N/A source cells give N/A;
// a failing row is logged and given N/A.
func (s *DatasetService) derive(ctx context.Context, ds *domain.Dataset, src int, e driven.Enricher) ([]domain.Value, error) {
	values := make([]domain.Value, len(ds.Rows))
	for i, row := range ds.Rows {
		text := row[src].String()
		if strings.TrimSpace(text) == "" || text == domain.NotAvailable {
			values[i] = domain.StringValue(domain.NotAvailable)
			continue
		}

		out, err := e.Enrich(ctx, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Warn("Enricher %s failed on row %d: %v", e.Name(), i+1, err)
			out = domain.NotAvailable
		}
		values[i] = domain.StringValue(out)
	}
	return values, nil
}

// Enrichers lists the registered enricher names, sorted.
func (s *DatasetService) Enrichers() []string {
	names := make([]string, 0, len(s.enrichers))
	for name := range s.enrichers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
